package main

import (
	"fmt"
	"os"

	"github.com/pslkit/psl"
	"github.com/pslkit/psl/libdiff"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
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
	in, err := os.ReadFile(schema)
	if err != nil {
		return fmt.Errorf("error reading schema: %w", err)
	}
	res, rep, err := psl.PatchText(in, p, cfg.patchOpts(false)...)
	if err != nil {
		return fmt.Errorf("error checking %s: %w", schema, err)
	}
	if err := writeReport(cc.Out, rep); err != nil {
		return err
	}
	if rep.Changed() {
		ins, del := libdiff.Stat(libdiff.Lines(string(in), string(res)))
		fmt.Fprintf(cc.Out, "%s: %d lines to insert, %d to delete\n", schema, ins, del)
		return cli.ExitCodeErr(1)
	}
	return nil
}
