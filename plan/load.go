package plan

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/pslkit/psl/debug"
)

type loadOpts struct {
	overlays [][]byte
}

type LoadOption func(*loadOpts)

// WithOverlay applies an overlay to the plan document before decoding
// it.  The overlay is YAML or JSON; a sequence is applied as a JSON
// patch and a mapping as a merge patch.
func WithOverlay(d []byte) LoadOption {
	return func(o *loadOpts) { o.overlays = append(o.overlays, d) }
}

// Load reads the plan name from fsys.  Section text files are
// resolved relative to the plan.
func Load(fsys fs.FS, name string, opts ...LoadOption) (*Plan, error) {
	o := &loadOpts{}
	for _, f := range opts {
		f(o)
	}
	d, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading plan: %w", err)
	}
	return decode(fsys, name, d, o)
}

// Parse decodes a plan from d.  Section text files are resolved
// relative to the current directory of fsys.
func Parse(fsys fs.FS, d []byte, opts ...LoadOption) (*Plan, error) {
	o := &loadOpts{}
	for _, f := range opts {
		f(o)
	}
	return decode(fsys, ".", d, o)
}

func decode(fsys fs.FS, name string, d []byte, o *loadOpts) (*Plan, error) {
	for _, ov := range o.overlays {
		var err error
		d, err = applyOverlay(d, ov)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOverlay, err)
		}
	}
	p := &Plan{}
	if err := yaml.UnmarshalWithOptions(d, p, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPlan, name, err)
	}
	dir := path.Dir(name)
	for i := range p.Steps {
		s := p.Steps[i].InsertSection
		if s == nil || s.TextFile == "" {
			continue
		}
		if s.Text != "" {
			return nil, fmt.Errorf("%w: step %d has both text and textFile", ErrInvalidPlan, i+1)
		}
		if fsys == nil {
			return nil, fmt.Errorf("%w: textFile %q without a file system", ErrInvalidPlan, s.TextFile)
		}
		td, err := fs.ReadFile(fsys, path.Join(dir, s.TextFile))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
		s.Text = string(td)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if debug.Plan() {
		debug.Logf("loaded plan %q from %s with %d steps\n", p.Name, name, len(p.Steps))
		debug.LogAny(p.Steps)
	}
	return p, nil
}

func applyOverlay(doc, overlay []byte) ([]byte, error) {
	jDoc, err := yaml.YAMLToJSON(doc)
	if err != nil {
		return nil, err
	}
	jOv, err := yaml.YAMLToJSON(overlay)
	if err != nil {
		return nil, err
	}
	jOv = bytes.TrimSpace(jOv)
	if len(jOv) != 0 && jOv[0] == '[' {
		ops, err := jsonpatch.DecodePatch(jOv)
		if err != nil {
			return nil, err
		}
		return ops.Apply(jDoc)
	}
	return jsonpatch.MergePatch(jDoc, jOv)
}
