package plan

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/parse"
)

type Plan struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Steps       []Step `yaml:"steps"`
}

type Step struct {
	Name          string         `yaml:"name"`
	AddField      *AddField      `yaml:"addField,omitempty"`
	InsertSection *InsertSection `yaml:"insertSection,omitempty"`
}

// AddField inserts Line after the field matched by After.  When Model
// is empty, every model holding a matching field is patched.
type AddField struct {
	Model string `yaml:"model,omitempty"`
	After Anchor `yaml:"after"`
	Line  string `yaml:"line"`

	member *ir.Member
}

// InsertSection inserts schema text before the first run of top-level
// comment lines equal to Before.
type InsertSection struct {
	Before   []string `yaml:"before"`
	Text     string   `yaml:"text,omitempty"`
	TextFile string   `yaml:"textFile,omitempty"`

	doc *ir.Document
}

// Decl names a block declared by a section.
type Decl struct {
	Kind string
	Name string
}

func (d Decl) String() string {
	return d.Kind + " " + d.Name
}

// Validate checks the plan and prepares its steps for use.  It is
// called by Load and may be called again safely.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrInvalidPlan, p.Name)
	}
	seen := map[string]bool{}
	for i := range p.Steps {
		s := &p.Steps[i]
		if s.Name == "" {
			s.Name = fmt.Sprintf("step-%d", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate step name %q", ErrInvalidPlan, s.Name)
		}
		seen[s.Name] = true
		if err := s.validate(); err != nil {
			return fmt.Errorf("%w: step %s: %w", ErrInvalidPlan, s.Name, err)
		}
	}
	return nil
}

func (s *Step) validate() error {
	switch {
	case s.AddField != nil && s.InsertSection != nil:
		return fmt.Errorf("both addField and insertSection given")
	case s.AddField != nil:
		return s.AddField.validate()
	case s.InsertSection != nil:
		return s.InsertSection.validate()
	}
	return fmt.Errorf("no action given")
}

func (a *AddField) validate() error {
	if err := a.After.compile(); err != nil {
		return err
	}
	m, err := parse.ParseMember(ir.ModelKind, a.Line)
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	if m.Type != ir.FieldMember {
		return fmt.Errorf("line %q is not a field", a.Line)
	}
	a.member = m
	return nil
}

// Member returns a fresh copy of the member to insert.
func (a *AddField) Member() *ir.Member {
	return a.member.Clone()
}

// FieldName returns the name of the field added.
func (a *AddField) FieldName() string {
	return a.member.Name
}

func (s *InsertSection) validate() error {
	if len(s.Before) == 0 {
		return fmt.Errorf("no marker given")
	}
	if s.Text == "" {
		return fmt.Errorf("empty section")
	}
	doc, err := parse.Parse([]byte(s.Text))
	if err != nil {
		return fmt.Errorf("section text: %w", err)
	}
	if len(doc.Blocks()) == 0 {
		return fmt.Errorf("section declares nothing")
	}
	s.doc = doc
	return nil
}

// Nodes returns fresh copies of the section's top-level nodes.
func (s *InsertSection) Nodes() []*ir.Node {
	return s.doc.Clone().Nodes
}

// Decls returns the blocks declared by the section.
func (s *InsertSection) Decls() []Decl {
	var res []Decl
	for _, b := range s.doc.Blocks() {
		res = append(res, Decl{Kind: b.Kind, Name: b.Name})
	}
	return res
}

// Marshal returns the plan as YAML.  Section text files are inlined.
func (p *Plan) Marshal() ([]byte, error) {
	cp := *p
	cp.Steps = make([]Step, len(p.Steps))
	for i, s := range p.Steps {
		if s.InsertSection != nil && s.InsertSection.Text != "" {
			is := *s.InsertSection
			is.TextFile = ""
			s.InsertSection = &is
		}
		cp.Steps[i] = s
	}
	return yaml.MarshalWithOptions(&cp, yaml.UseLiteralStyleIfMultiline(true))
}
