package encode

import (
	"bufio"
	"io"
	"strings"

	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/token"
)

type EncState struct {
	Color   func(ColorAttr, string) string
	trailer *bool

	w     *bufio.Writer
	first bool
}

type lineKind int

const (
	otherLine lineKind = iota
	headerLine
	fieldLine
)

// Encode writes doc to w.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{w: bufio.NewWriter(w), first: true}
	for _, opt := range opts {
		opt(es)
	}
	if doc.BOM {
		es.w.WriteString("\ufeff")
	}
	for _, n := range doc.Nodes {
		switch n.Type {
		case ir.BlockType:
			es.encodeBlock(n.Block)
		case ir.CommentType:
			es.line(n.Raw, otherLine)
		default:
			es.writeLine(n.Raw)
		}
	}
	trailer := doc.Trailer
	if es.trailer != nil {
		trailer = *es.trailer
	}
	if trailer && !es.first {
		es.w.WriteByte('\n')
	}
	return es.w.Flush()
}

func EncodeString(doc *ir.Document, opts ...EncodeOption) (string, error) {
	var buf strings.Builder
	if err := Encode(doc, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (es *EncState) encodeBlock(b *ir.Block) {
	es.line(b.Header, headerLine)
	if b.Inline {
		return
	}
	for _, m := range b.Members {
		switch m.Type {
		case ir.FieldMember:
			es.line(m.Raw, fieldLine)
		case ir.BlankMember, ir.TextMember:
			es.writeLine(m.Raw)
		default:
			es.line(m.Raw, otherLine)
		}
	}
	es.line(b.Close, otherLine)
}

func (es *EncState) writeLine(s string) {
	if !es.first {
		es.w.WriteByte('\n')
	}
	es.first = false
	es.w.WriteString(s)
}

func (es *EncState) line(s string, k lineKind) {
	if es.Color == nil {
		es.writeLine(s)
		return
	}
	es.writeLine(es.colorLine(s, k))
}

func (es *EncState) colorLine(s string, k lineKind) string {
	d := []byte(s)
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return s
	}
	var (
		out    []byte
		prev   int
		idents int
		inAttr bool
		inType bool
	)
	for i := range toks {
		t := &toks[i]
		out = append(out, d[prev:t.Pos.I]...)
		prev = t.End()
		attr := ValueColor
		switch t.Type {
		case token.TComment, token.TDocComment:
			attr = CommentColor
		case token.TString:
			attr = StringColor
		case token.TNumber:
			attr = NumberColor
		case token.TAt, token.TAtAt:
			attr = AttrColor
			inAttr = true
			inType = false
		case token.TIdent:
			switch {
			case inAttr:
				attr = AttrColor
			case idents == 0 && k == headerLine:
				attr = KeywordColor
			case idents == 0:
				attr = NameColor
			case idents == 1 && k == headerLine:
				attr = NameColor
			case idents == 1 && k == fieldLine:
				attr = TypeColor
				inType = true
			}
			idents++
		case token.TDot:
			attr = SepColor
			if inAttr {
				attr = AttrColor
			}
		case token.TLSquare, token.TRSquare, token.TQuestion:
			attr = SepColor
			if inType {
				attr = TypeColor
			}
		case token.TNewline:
			out = append(out, t.Bytes...)
			continue
		default:
			attr = SepColor
		}
		if t.Type != token.TIdent && t.Type != token.TDot && t.Type != token.TAt && t.Type != token.TAtAt {
			inAttr = false
		}
		if t.Type == token.TIdent && attr != TypeColor {
			inType = false
		}
		out = append(out, es.Color(attr, string(t.Bytes))...)
	}
	out = append(out, d[prev:]...)
	return string(out)
}
