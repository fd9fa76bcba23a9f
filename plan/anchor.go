package plan

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pslkit/psl/debug"
	"github.com/pslkit/psl/ir"
)

// Anchor selects a field.  All given criteria must hold.
type Anchor struct {
	Field    string `yaml:"field,omitempty"`
	Type     string `yaml:"type,omitempty"`
	Relation string `yaml:"relation,omitempty"`
	// Where is a boolean expression over FieldEnv.
	Where string `yaml:"where,omitempty"`

	prg *vm.Program
}

// FieldEnv is the environment of anchor Where expressions.
type FieldEnv struct {
	Model      string
	Name       string
	Type       string
	BaseType   string
	List       bool
	Optional   bool
	Relation   string
	Attributes []string
	Comment    string
}

func NewFieldEnv(model string, f *ir.Field) FieldEnv {
	return FieldEnv{
		Model:      model,
		Name:       f.Name,
		Type:       f.Type.String(),
		BaseType:   f.Type.Name,
		List:       f.Type.List,
		Optional:   f.Type.Optional,
		Relation:   f.Relation(),
		Attributes: f.AttrNames(),
		Comment:    f.CommentText(),
	}
}

func (a *Anchor) compile() error {
	if a.Field == "" && a.Type == "" && a.Relation == "" && a.Where == "" {
		return fmt.Errorf("empty anchor")
	}
	if a.Where == "" {
		a.prg = nil
		return nil
	}
	prg, err := expr.Compile(a.Where, expr.Env(FieldEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("anchor where %q: %w", a.Where, err)
	}
	a.prg = prg
	return nil
}

// Match reports whether field f of the given model is selected by a.
func (a *Anchor) Match(model string, f *ir.Field) (bool, error) {
	if a.Field != "" && f.Name != a.Field {
		return false, nil
	}
	if a.Type != "" && f.Type.String() != a.Type {
		return false, nil
	}
	if a.Relation != "" && f.Relation() != a.Relation {
		return false, nil
	}
	if a.Where == "" {
		return true, nil
	}
	if a.prg == nil {
		if err := a.compile(); err != nil {
			return false, err
		}
	}
	out, err := expr.Run(a.prg, NewFieldEnv(model, f))
	if err != nil {
		return false, fmt.Errorf("anchor where %q on %s.%s: %w", a.Where, model, f.Name, err)
	}
	ok, _ := out.(bool)
	if debug.Match() {
		debug.Logf("where %q on %s.%s: %t\n", a.Where, model, f.Name, ok)
	}
	return ok, nil
}

func (a Anchor) String() string {
	s := ""
	add := func(k, v string) {
		if v == "" {
			return
		}
		if s != "" {
			s += " "
		}
		s += k + "=" + v
	}
	add("field", a.Field)
	add("type", a.Type)
	add("relation", a.Relation)
	add("where", a.Where)
	return s
}
