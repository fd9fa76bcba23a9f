package psl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pslkit/psl/debug"
	"github.com/pslkit/psl/encode"
	"github.com/pslkit/psl/ir"
	"github.com/pslkit/psl/parse"
	"github.com/pslkit/psl/plan"
)

var (
	ErrAnchorMissing = errors.New("anchor missing")
	ErrConflict      = errors.New("conflict")
)

type Status int

const (
	Applied Status = iota
	AlreadyApplied
	AnchorMissing
	Conflict
)

var statusNames = map[Status]string{
	Applied:        "applied",
	AlreadyApplied: "already-applied",
	AnchorMissing:  "anchor-missing",
	Conflict:       "conflict",
}

func (s Status) String() string {
	n, ok := statusNames[s]
	if ok {
		return n
	}
	return fmt.Sprintf("<status %d>", int(s))
}

func (s Status) err() error {
	switch s {
	case AnchorMissing:
		return ErrAnchorMissing
	case Conflict:
		return ErrConflict
	}
	return nil
}

type StepResult struct {
	Name   string
	Status Status
	// Detail says where the step applied, or why it did not.
	Detail string
}

func (r StepResult) String() string {
	if r.Detail == "" {
		return r.Name + ": " + r.Status.String()
	}
	return r.Name + ": " + r.Status.String() + " (" + r.Detail + ")"
}

type Report struct {
	Steps []StepResult
}

// Changed reports whether any step modified the document.
func (r *Report) Changed() bool {
	for i := range r.Steps {
		if r.Steps[i].Status == Applied {
			return true
		}
	}
	return false
}

// Missing returns the steps which could not be applied.
func (r *Report) Missing() []StepResult {
	var res []StepResult
	for _, s := range r.Steps {
		if s.Status == AnchorMissing || s.Status == Conflict {
			res = append(res, s)
		}
	}
	return res
}

func (r *Report) String() string {
	buf := &strings.Builder{}
	for _, s := range r.Steps {
		buf.WriteString(s.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}

type patchOpts struct {
	strict    bool
	parseOpts []parse.ParseOption
}

type PatchOption func(*patchOpts)

// Strict causes steps which cannot be applied to fail the patch with
// ErrAnchorMissing or ErrConflict.
func Strict(v bool) PatchOption {
	return func(o *patchOpts) { o.strict = v }
}

// WithParseOptions sets the options used by PatchText to parse its
// input.
func WithParseOptions(opts ...parse.ParseOption) PatchOption {
	return func(o *patchOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

// Patch applies the steps of p to doc in order.  A step whose anchor
// is missing leaves doc unchanged and patching continues, unless
// Strict is given.  In strict mode doc may hold the results of the
// steps preceding the failing one.
func Patch(doc *ir.Document, p *plan.Plan, opts ...PatchOption) (*Report, error) {
	o := &patchOpts{}
	for _, f := range opts {
		f(o)
	}
	rep := &Report{}
	for i := range p.Steps {
		s := &p.Steps[i]
		res, err := patchStep(doc, s)
		if err != nil {
			return rep, fmt.Errorf("step %s: %w", s.Name, err)
		}
		if debug.Patch() {
			debug.Logf("%s\n", res)
		}
		rep.Steps = append(rep.Steps, res)
		if o.strict {
			if err := res.Status.err(); err != nil {
				return rep, fmt.Errorf("step %s: %w: %s", s.Name, err, res.Detail)
			}
		}
	}
	return rep, nil
}

// PatchText parses in, patches it and returns the resulting text.  On
// error, no text is returned.
func PatchText(in []byte, p *plan.Plan, opts ...PatchOption) ([]byte, *Report, error) {
	o := &patchOpts{}
	for _, f := range opts {
		f(o)
	}
	doc, err := parse.Parse(in, o.parseOpts...)
	if err != nil {
		return nil, nil, err
	}
	rep, err := Patch(doc, p, opts...)
	if err != nil {
		return nil, rep, err
	}
	if !rep.Changed() {
		return in, rep, nil
	}
	out, err := encode.EncodeString(doc)
	if err != nil {
		return nil, rep, err
	}
	return []byte(out), rep, nil
}

func patchStep(doc *ir.Document, s *plan.Step) (StepResult, error) {
	var (
		res StepResult
		err error
	)
	switch {
	case s.AddField != nil:
		res, err = addField(doc, s.AddField)
	case s.InsertSection != nil:
		res, err = insertSection(doc, s.InsertSection)
	default:
		err = fmt.Errorf("%w: no action", plan.ErrInvalidPlan)
	}
	res.Name = s.Name
	return res, err
}

func addField(doc *ir.Document, a *plan.AddField) (StepResult, error) {
	name := a.FieldName()
	if a.Model != "" {
		b := doc.Block(ir.ModelKind, a.Model)
		if b == nil {
			return StepResult{Status: AnchorMissing, Detail: "no model " + a.Model}, nil
		}
		if f := b.Field(name); f != nil {
			return StepResult{Status: AlreadyApplied, Detail: b.MemberPath(f) + " exists"}, nil
		}
	}
	matches, err := Match(doc, a.Model, a.After)
	if err != nil {
		return StepResult{}, err
	}
	if len(matches) == 0 {
		where := "any model"
		if a.Model != "" {
			where = a.Model
		}
		return StepResult{Status: AnchorMissing, Detail: fmt.Sprintf("no field matching %s in %s", a.After, where)}, nil
	}
	var added, existing []string
	done := map[*ir.Block]bool{}
	for _, m := range matches {
		b := m.Block
		if done[b] {
			continue
		}
		done[b] = true
		if f := b.Field(name); f != nil {
			existing = append(existing, b.MemberPath(f))
			continue
		}
		nm := a.Member()
		if doc.CRLF {
			nm.ToCRLF()
		}
		if err := b.InsertMemberAfter(b.IndexOf(m.Member), nm); err != nil {
			return StepResult{}, err
		}
		added = append(added, fmt.Sprintf("%s after %s", b.MemberPath(b.Field(name)), m.Member.Name))
	}
	if len(added) == 0 {
		return StepResult{Status: AlreadyApplied, Detail: strings.Join(existing, ", ") + " exists"}, nil
	}
	return StepResult{Status: Applied, Detail: "inserted " + strings.Join(added, ", ")}, nil
}

func insertSection(doc *ir.Document, s *plan.InsertSection) (StepResult, error) {
	decls := s.Decls()
	var have, lack []string
	for _, d := range decls {
		if doc.Declares(d.Kind, d.Name) {
			have = append(have, d.String())
		} else {
			lack = append(lack, d.String())
		}
	}
	switch {
	case len(decls) != 0 && len(lack) == 0:
		return StepResult{Status: AlreadyApplied, Detail: strings.Join(have, ", ") + " declared"}, nil
	case len(have) != 0:
		return StepResult{
			Status: Conflict,
			Detail: fmt.Sprintf("%s declared but %s not", strings.Join(have, ", "), strings.Join(lack, ", ")),
		}, nil
	}
	i := FindMarker(doc, s.Before)
	if i == -1 {
		return StepResult{Status: AnchorMissing, Detail: fmt.Sprintf("marker %q not found", s.Before)}, nil
	}
	nodes := s.Nodes()
	if doc.CRLF {
		for _, n := range nodes {
			n.ToCRLF()
		}
	}
	if err := doc.InsertBefore(i, nodes...); err != nil {
		return StepResult{}, err
	}
	return StepResult{Status: Applied, Detail: "inserted " + strings.Join(lack, ", ")}, nil
}
