package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pslkit/psl"
	"github.com/pslkit/psl/encode"
	"github.com/pslkit/psl/parse"
	"github.com/pslkit/psl/plan"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const defaultSchema = "schema.prisma"

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	Lenient bool `cli:"name=lenient desc='keep lines which do not parse as text'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	if cfg.Lenient {
		return []parse.ParseOption{parse.Lenient()}
	}
	return nil
}

func (cfg *MainConfig) patchOpts(strict bool) []psl.PatchOption {
	return []psl.PatchOption{
		psl.Strict(strict),
		psl.WithParseOptions(cfg.parseOpts()...),
	}
}

// colors reports whether output to w should be colored: when -color is
// given, or when it is not and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == "color" && opt.Value != nil {
			return false
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.colors(w) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

// PlanOpts select the plan used by a command.
type PlanOpts struct {
	File     string
	Overlays [][]byte
}

func (po *PlanOpts) cliOpts() []*cli.Opt {
	return []*cli.Opt{
		{
			Name:        "plan",
			Description: "plan file (default: the builtin " + plan.BuiltinName + " plan)",
			Type:        cli.NamedFuncOpt(po.fileOpt, "(filepath)"),
		},
		{
			Name:        "overlay",
			Description: "json patch or merge patch to apply to the plan, may be repeated",
			Type:        cli.NamedFuncOpt(po.overlayOpt, "(filepath)"),
		},
	}
}

func (po *PlanOpts) fileOpt(_ *cli.Context, a string) (any, error) {
	po.File = a
	return a, nil
}

func (po *PlanOpts) overlayOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read overlay: %w", cli.ErrUsage, err)
	}
	po.Overlays = append(po.Overlays, d)
	return a, nil
}

func (po *PlanOpts) load() (*plan.Plan, error) {
	opts := make([]plan.LoadOption, 0, len(po.Overlays))
	for _, ov := range po.Overlays {
		opts = append(opts, plan.WithOverlay(ov))
	}
	if po.File == "" || po.File == plan.BuiltinName {
		return plan.Builtin(opts...)
	}
	dir, name := filepath.Split(po.File)
	if dir == "" {
		dir = "."
	}
	return plan.Load(os.DirFS(dir), name, opts...)
}

type ApplyConfig struct {
	*MainConfig
	Plan PlanOpts

	Out     string `cli:"name=o desc='output file (default: the schema file)'"`
	DryRun  bool   `cli:"name=n desc='print a diff instead of writing'"`
	Strict  bool   `cli:"name=strict desc='fail if a step cannot be applied'"`
	Backup  bool   `cli:"name=backup desc='save the original schema with a .bak suffix'"`
	Verbose bool   `cli:"name=v desc='print the status of each step'"`

	Apply *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Plan PlanOpts

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=U desc='lines of context'"`

	Diff *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type PlanConfig struct {
	*MainConfig
	Plan PlanOpts

	PlanCmd *cli.Command
}

func schemaArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return defaultSchema, nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one schema file, got %v", cli.ErrUsage, args)
}
