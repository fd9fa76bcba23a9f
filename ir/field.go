package ir

import (
	"strings"

	"github.com/pslkit/psl/token"
)

type Field struct {
	Name    string
	Type    FieldType
	Attrs   []Attribute
	Comment string
}

type FieldType struct {
	// Name is the base type name, for example "Combo" in "Combo[]".
	Name        string
	List        bool
	Optional    bool
	Unsupported bool
	// Raw is the type as written, for example `Unsupported("circle")?`.
	Raw string
}

// String returns the type in its canonical form, such as "Combo[]".
func (t FieldType) String() string {
	if t.Unsupported {
		return t.Raw
	}
	s := t.Name
	if t.List {
		s += "[]"
	}
	if t.Optional {
		s += "?"
	}
	return s
}

type Attribute struct {
	// Name is the attribute name without the leading '@', for example
	// "relation" or "db.Text".
	Name string
	// Args holds the text between the parentheses, if any.
	Args    string
	HasArgs bool
}

func (a Attribute) String() string {
	if !a.HasArgs {
		return "@" + a.Name
	}
	return "@" + a.Name + "(" + a.Args + ")"
}

// Attr returns the first attribute with the given name.
func (f *Field) Attr(name string) *Attribute {
	for i := range f.Attrs {
		if f.Attrs[i].Name == name {
			return &f.Attrs[i]
		}
	}
	return nil
}

func (f *Field) AttrNames() []string {
	res := make([]string, len(f.Attrs))
	for i := range f.Attrs {
		res[i] = f.Attrs[i].Name
	}
	return res
}

// Relation returns the relation name given to @relation, either as the
// first positional argument or as the name argument.
func (f *Field) Relation() string {
	a := f.Attr("relation")
	if a == nil || !a.HasArgs {
		return ""
	}
	return RelationName(a.Args)
}

// RelationName extracts the relation name from the arguments of a
// @relation attribute.
func RelationName(args string) string {
	toks, err := token.Tokenize(nil, []byte(args))
	if err != nil {
		return ""
	}
	depth := 0
	argStart := true
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TLParen, token.TLSquare, token.TLCurl:
			depth++
			argStart = false
			continue
		case token.TRParen, token.TRSquare, token.TRCurl:
			depth--
			continue
		case token.TComma:
			if depth == 0 {
				argStart = true
			}
			continue
		}
		if depth != 0 || !argStart {
			continue
		}
		argStart = false
		switch t.Type {
		case token.TString:
			return t.String()
		case token.TIdent:
			if t.String() != "name" || i+2 >= len(toks) {
				continue
			}
			if toks[i+1].Type == token.TColon && toks[i+2].Type == token.TString {
				return toks[i+2].String()
			}
		}
	}
	return ""
}

// CommentText returns the field's trailing comment without the leading
// slashes.
func (f *Field) CommentText() string {
	return strings.TrimSpace(strings.TrimLeft(f.Comment, "/"))
}
