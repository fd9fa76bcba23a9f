package psl

import (
	"fmt"
	"os"

	"github.com/pslkit/psl/debug"
	"github.com/pslkit/psl/plan"
)

type fileOpts struct {
	backup bool
	dryRun bool
	patch  []PatchOption
}

type FileOption func(*fileOpts)

// Backup causes PatchFile to save the original input to a file named
// with a ".bak" suffix before writing.
func Backup(v bool) FileOption {
	return func(o *fileOpts) { o.backup = v }
}

// DryRun causes PatchFile to patch without writing anything.
func DryRun(v bool) FileOption {
	return func(o *fileOpts) { o.dryRun = v }
}

func WithPatchOptions(opts ...PatchOption) FileOption {
	return func(o *fileOpts) { o.patch = append(o.patch, opts...) }
}

// PatchFile patches the schema file in and writes the result to out,
// or back to in when out is empty.  The output is written through a
// temporary file and renamed into place, with the permissions of in.
// Nothing is written if patching fails.
func PatchFile(in, out string, p *plan.Plan, opts ...FileOption) (*Report, error) {
	o := &fileOpts{}
	for _, f := range opts {
		f(o)
	}
	if out == "" {
		out = in
	}
	fi, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	d, err := os.ReadFile(in)
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	res, rep, err := PatchText(d, p, o.patch...)
	if err != nil {
		return rep, fmt.Errorf("error patching %s: %w", in, err)
	}
	if o.dryRun {
		return rep, nil
	}
	if out == in && !rep.Changed() {
		if debug.Patch() {
			debug.Logf("%s unchanged, not writing\n", in)
		}
		return rep, nil
	}
	perm := fi.Mode().Perm()
	if o.backup {
		if err := writeFile(in+".bak", d, perm); err != nil {
			return rep, fmt.Errorf("error writing backup: %w", err)
		}
	}
	if err := writeFile(out, res, perm); err != nil {
		return rep, fmt.Errorf("error writing schema: %w", err)
	}
	if debug.Patch() {
		debug.Logf("wrote %d bytes to %s\n", len(res), out)
	}
	return rep, nil
}

func writeFile(path string, d []byte, perm os.FileMode) error {
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, d, perm); err != nil {
		return err
	}
	// WriteFile is subject to the umask.
	if err := os.Chmod(tmpFile, perm); err != nil {
		os.Remove(tmpFile)
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return nil
}
