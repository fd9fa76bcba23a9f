package psl

import (
	"strings"

	"github.com/pslkit/psl/debug"
	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/plan"
)

// FieldMatch is a field selected by an anchor.
type FieldMatch struct {
	Block  *ir.Block
	Member *ir.Member
}

func (m FieldMatch) Path() string {
	return m.Block.MemberPath(m.Member)
}

// fieldKinds are the kinds of block that hold fields.
var fieldKinds = []string{ir.ModelKind, ir.ViewKind, ir.TypeKind}

// Match returns the fields of doc selected by a, in document order.  If
// model is empty, every block holding fields is searched.
func Match(doc *ir.Document, model string, a plan.Anchor) ([]FieldMatch, error) {
	var res []FieldMatch
	for _, b := range fieldBlocks(doc, model) {
		for _, m := range b.Fields() {
			ok, err := a.Match(b.Name, m.Field)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if debug.Match() {
				debug.Logf("anchor %s matched %s\n", a, b.MemberPath(m))
			}
			res = append(res, FieldMatch{Block: b, Member: m})
		}
	}
	return res, nil
}

func fieldBlocks(doc *ir.Document, model string) []*ir.Block {
	var res []*ir.Block
	for _, b := range doc.Blocks() {
		if model != "" && b.Name != model {
			continue
		}
		for _, k := range fieldKinds {
			if b.Kind == k {
				res = append(res, b)
				break
			}
		}
	}
	return res
}

// FindMarker returns the index of the first top-level node of doc which
// starts a run of comment lines equal to lines, or -1.  Trailing
// whitespace is ignored.
func FindMarker(doc *ir.Document, lines []string) int {
	if len(lines) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(lines) <= len(doc.Nodes); i++ {
		for j, l := range lines {
			n := doc.Nodes[i+j]
			if n.Type != ir.CommentType || trimEnd(n.Raw) != trimEnd(l) {
				continue outer
			}
		}
		return i
	}
	return -1
}

func trimEnd(s string) string {
	return strings.TrimRight(s, " \t\r")
}
