package parse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pslkit/psl/debug"
	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/token"
)

type line struct {
	start, end int
}

type parser struct {
	opts   *parseOpts
	posDoc *token.PosDoc
	d      []byte
	lines  []line
	i      int
}

func newParser(d []byte, o *parseOpts) *parser {
	p := &parser{opts: o, posDoc: token.NewPosDoc(d), d: d}
	start := 0
	for i, c := range d {
		if c == '\n' {
			p.lines = append(p.lines, line{start, i})
			start = i + 1
		}
	}
	if start < len(d) {
		p.lines = append(p.lines, line{start, len(d)})
	}
	return p
}

var bom = []byte("\ufeff")

// Parse parses a schema document.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	doc := &ir.Document{}
	if bytes.HasPrefix(d, bom) {
		doc.BOM = true
		d = d[len(bom):]
	}
	doc.Trailer = len(d) > 0 && d[len(d)-1] == '\n'
	if i := bytes.IndexByte(d, '\n'); i > 0 && d[i-1] == '\r' {
		doc.CRLF = true
	}
	p := newParser(d, pOpts)
	for p.i < len(p.lines) {
		n, err := p.parseTop()
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, n)
	}
	if debug.Parse() {
		debug.Logf("parsed %d nodes from %d lines\n", len(doc.Nodes), len(p.lines))
	}
	return doc, nil
}

// ParseMember parses the text of a single block member, as it would
// appear in a block of the given kind.  The text may span several
// lines when brackets are left open at the end of a line.
func ParseMember(kind, text string, opts ...ParseOption) (*ir.Member, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := newParser([]byte(text), pOpts)
	if len(p.lines) == 0 {
		return &ir.Member{Type: ir.BlankMember}, nil
	}
	m, err := p.parseMember(kind)
	if err != nil {
		return nil, err
	}
	if p.i != len(p.lines) {
		return nil, p.errAt(p.i, fmt.Errorf("%w: more than one member", ErrUnexpectedLine))
	}
	return m, nil
}

func (p *parser) text(l line) string {
	return string(p.d[l.start:l.end])
}

func (p *parser) errAt(i int, err error) error {
	return &ParseErr{Err: err, Line: i, Text: p.text(p.lines[i])}
}

func (p *parser) parseTop() (*ir.Node, error) {
	l := p.lines[p.i]
	raw := p.text(l)
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		p.i++
		return &ir.Node{Type: ir.BlankType, Raw: raw}, nil
	case strings.HasPrefix(trimmed, "//"):
		p.i++
		return ir.NewComment(raw), nil
	}
	toks, err := token.TokenizeRange(nil, p.posDoc, l.start, l.end)
	if err != nil {
		return p.topText(err)
	}
	kind, name, inline, ok := header(toks)
	if !ok {
		if toks[0].Type == token.TRCurl {
			return p.topText(ErrUnmatchedClose)
		}
		return p.topText(ErrUnexpectedLine)
	}
	b := &ir.Block{Kind: kind, Name: name, Header: raw, Inline: inline}
	startLine := p.i
	p.i++
	if inline {
		return ir.NewBlock(b), nil
	}
	for p.i < len(p.lines) {
		raw := p.text(p.lines[p.i])
		if isClose(raw) {
			b.Close = raw
			p.i++
			if debug.Parse() {
				debug.Logf("parsed %s with %d members\n", b.Path(), len(b.Members))
			}
			return ir.NewBlock(b), nil
		}
		m, err := p.parseMember(kind)
		if err != nil {
			return nil, err
		}
		b.Members = append(b.Members, m)
	}
	if p.opts.lenient {
		p.i = startLine
		return p.topText(ErrUnterminatedBlock)
	}
	return nil, p.errAt(startLine, ErrUnterminatedBlock)
}

func (p *parser) topText(err error) (*ir.Node, error) {
	if !p.opts.lenient {
		return nil, p.errAt(p.i, err)
	}
	if debug.Parse() {
		debug.Logf("keeping line %d as text: %v\n", p.i+1, err)
	}
	n := ir.NewText(p.text(p.lines[p.i]))
	p.i++
	return n, nil
}

func (p *parser) memberText(err error) (*ir.Member, error) {
	if !p.opts.lenient {
		return nil, p.errAt(p.i, err)
	}
	m := &ir.Member{Type: ir.TextMember, Raw: p.text(p.lines[p.i])}
	p.i++
	return m, nil
}

func (p *parser) parseMember(kind string) (*ir.Member, error) {
	l := p.lines[p.i]
	raw := p.text(l)
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		p.i++
		return &ir.Member{Type: ir.BlankMember, Raw: raw}, nil
	case strings.HasPrefix(trimmed, "//"):
		p.i++
		return &ir.Member{Type: ir.CommentMember, Raw: raw}, nil
	}
	var (
		toks []token.Token
		err  error
	)
	last := p.i
	for {
		toks, err = token.TokenizeRange(toks[:0], p.posDoc, l.start, p.lines[last].end)
		if err != nil {
			return p.memberText(err)
		}
		if depth(toks) <= 0 || last+1 >= len(p.lines) || isClose(p.text(p.lines[last+1])) {
			break
		}
		last++
	}
	m := &ir.Member{Raw: string(p.d[l.start:p.lines[last].end])}
	if err := classify(m, kind, p.d, dropNewlines(toks)); err != nil {
		return p.memberText(err)
	}
	p.i = last + 1
	return m, nil
}

func isClose(raw string) bool {
	return strings.HasPrefix(strings.TrimSpace(raw), "}")
}

func header(toks []token.Token) (kind, name string, inline, ok bool) {
	toks = trimComment(toks)
	if len(toks) < 3 || toks[0].Type != token.TIdent || toks[1].Type != token.TIdent || toks[2].Type != token.TLCurl {
		return "", "", false, false
	}
	kind = toks[0].String()
	if !ir.IsBlockKind(kind) {
		return "", "", false, false
	}
	name = toks[1].String()
	switch {
	case len(toks) == 3:
		return kind, name, false, true
	case len(toks) == 4 && toks[3].Type == token.TRCurl:
		return kind, name, true, true
	}
	return "", "", false, false
}

func trimComment(toks []token.Token) []token.Token {
	for len(toks) > 0 && toks[len(toks)-1].Type.IsComment() {
		toks = toks[:len(toks)-1]
	}
	return toks
}

func dropNewlines(toks []token.Token) []token.Token {
	res := toks[:0]
	for _, t := range toks {
		if t.Type == token.TNewline {
			continue
		}
		res = append(res, t)
	}
	return res
}

func depth(toks []token.Token) int {
	n := 0
	for i := range toks {
		switch toks[i].Type {
		case token.TLParen, token.TLSquare, token.TLCurl:
			n++
		case token.TRParen, token.TRSquare, token.TRCurl:
			n--
		}
	}
	return n
}

var closers = map[token.TokenType]token.TokenType{
	token.TLParen:  token.TRParen,
	token.TLSquare: token.TRSquare,
	token.TLCurl:   token.TRCurl,
}

// matching returns the index of the token closing the bracket opened
// at toks[i].
func matching(toks []token.Token, i int) (int, error) {
	var want []token.TokenType
	for j := i; j < len(toks); j++ {
		switch toks[j].Type {
		case token.TLParen, token.TLSquare, token.TLCurl:
			want = append(want, closers[toks[j].Type])
		case token.TRParen, token.TRSquare, token.TRCurl:
			if len(want) == 0 || want[len(want)-1] != toks[j].Type {
				return 0, fmt.Errorf("%w: %s closed by %s", ErrUnbalanced, toks[i].Bytes, toks[j].Bytes)
			}
			want = want[:len(want)-1]
			if len(want) == 0 {
				return j, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %s not closed", ErrUnbalanced, toks[i].Bytes)
}
