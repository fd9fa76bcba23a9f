package main

import (
	"fmt"
	"os"

	"github.com/pslkit/psl"
	"github.com/pslkit/psl/libdiff"
	"github.com/pslkit/psl/plan"
	"github.com/scott-cotton/cli"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	schema, err := schemaArg(args)
	if err != nil {
		return err
	}
	p, err := cfg.Plan.load()
	if err != nil {
		return err
	}
	if cfg.DryRun {
		return applyDryRun(cfg, cc, schema, p)
	}
	rep, err := psl.PatchFile(schema, cfg.Out, p,
		psl.Backup(cfg.Backup),
		psl.WithPatchOptions(cfg.patchOpts(cfg.Strict)...))
	if rep != nil && cfg.Verbose {
		if werr := writeReport(cc.Out, rep); werr != nil {
			return werr
		}
	}
	if err != nil {
		return err
	}
	out := cfg.Out
	if out == "" {
		out = schema
	}
	_, err = fmt.Fprintf(cc.Out, "schema updated: %s\n", out)
	return err
}

func applyDryRun(cfg *ApplyConfig, cc *cli.Context, schema string, p *plan.Plan) error {
	in, err := os.ReadFile(schema)
	if err != nil {
		return fmt.Errorf("error reading schema: %w", err)
	}
	res, rep, err := psl.PatchText(in, p, cfg.patchOpts(cfg.Strict)...)
	if rep != nil && cfg.Verbose {
		if werr := writeReport(cc.Out, rep); werr != nil {
			return werr
		}
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", schema, err)
	}
	out := cfg.Out
	if out == "" {
		out = schema
	}
	d := libdiff.Unified(schema, out, string(in), string(res), libdiff.Colors(cfg.colors(cc.Out)))
	_, err = cc.Out.Write([]byte(d))
	return err
}
