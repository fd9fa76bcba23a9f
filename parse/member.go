package parse

import (
	"fmt"
	"strings"

	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/token"
)

func classify(m *ir.Member, kind string, d []byte, toks []token.Token) error {
	if len(toks) == 0 {
		m.Type = ir.BlankMember
		return nil
	}
	t0 := &toks[0]
	switch {
	case t0.Type.IsComment():
		m.Type = ir.CommentMember
		return nil
	case t0.Type == token.TAtAt:
		attrs, _, err := parseAttrs(d, toks, 0, token.TAtAt)
		if err != nil {
			return err
		}
		m.Type = ir.BlockAttrMember
		m.Name = attrs[0].Name
		return nil
	case t0.Type != token.TIdent:
		return fmt.Errorf("%w: %s at start of member", ErrUnexpectedLine, t0.Bytes)
	}
	switch kind {
	case ir.DatasourceKind, ir.GeneratorKind:
		if len(toks) < 3 || toks[1].Type != token.TEquals {
			return fmt.Errorf("%w: expected assignment", ErrUnexpectedLine)
		}
		if depth(toks) != 0 {
			return ErrUnbalanced
		}
		m.Type = ir.AssignMember
		m.Name = t0.String()
	case ir.EnumKind:
		if _, _, err := parseAttrs(d, toks, 1, token.TAt); err != nil {
			return err
		}
		m.Type = ir.ValueMember
		m.Name = t0.String()
	default:
		f, err := parseField(d, toks)
		if err != nil {
			return err
		}
		m.Type = ir.FieldMember
		m.Name = f.Name
		m.Field = f
	}
	return nil
}

func parseField(d []byte, toks []token.Token) (*ir.Field, error) {
	if len(toks) < 2 || toks[1].Type != token.TIdent {
		return nil, fmt.Errorf("%w: %s has no type", ErrBadField, toks[0].Bytes)
	}
	f := &ir.Field{Name: toks[0].String()}
	ft := ir.FieldType{Name: toks[1].String()}
	i := 2
	if ft.Name == "Unsupported" && i < len(toks) && toks[i].Type == token.TLParen {
		j, err := matching(toks, i)
		if err != nil {
			return nil, err
		}
		ft.Unsupported = true
		i = j + 1
	}
mods:
	for i < len(toks) {
		switch {
		case toks[i].Type == token.TLSquare && i+1 < len(toks) && toks[i+1].Type == token.TRSquare:
			ft.List = true
			i += 2
		case toks[i].Type == token.TQuestion:
			ft.Optional = true
			i++
		default:
			break mods
		}
	}
	ft.Raw = string(d[toks[1].Pos.I:toks[i-1].End()])
	f.Type = ft
	attrs, comment, err := parseAttrs(d, toks, i, token.TAt)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Name, err)
	}
	f.Attrs = attrs
	f.Comment = comment
	return f, nil
}

// parseAttrs parses a sequence of attributes introduced by tokens of
// type at, optionally followed by a trailing comment.
func parseAttrs(d []byte, toks []token.Token, i int, at token.TokenType) ([]ir.Attribute, string, error) {
	var attrs []ir.Attribute
	for i < len(toks) {
		t := &toks[i]
		if t.Type.IsComment() {
			if i != len(toks)-1 {
				return nil, "", fmt.Errorf("%w: tokens after comment", ErrUnexpectedLine)
			}
			return attrs, string(t.Bytes), nil
		}
		if t.Type != at {
			return nil, "", fmt.Errorf("%w: unexpected %s", ErrBadField, t.Bytes)
		}
		name, j, err := attrName(toks, i+1)
		if err != nil {
			return nil, "", err
		}
		a := ir.Attribute{Name: name}
		if j < len(toks) && toks[j].Type == token.TLParen {
			k, err := matching(toks, j)
			if err != nil {
				return nil, "", err
			}
			a.HasArgs = true
			a.Args = string(d[toks[j].End():toks[k].Pos.I])
			j = k + 1
		}
		attrs = append(attrs, a)
		i = j
	}
	return attrs, "", nil
}

func attrName(toks []token.Token, i int) (string, int, error) {
	if i >= len(toks) || toks[i].Type != token.TIdent {
		return "", 0, fmt.Errorf("%w: attribute without name", ErrBadField)
	}
	parts := []string{toks[i].String()}
	i++
	for i+1 < len(toks) && toks[i].Type == token.TDot && toks[i+1].Type == token.TIdent {
		parts = append(parts, toks[i+1].String())
		i += 2
	}
	return strings.Join(parts, "."), i, nil
}
