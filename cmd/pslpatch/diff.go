package main

import (
	"fmt"
	"os"

	"github.com/pslkit/psl/libdiff"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Context < 0 {
		return fmt.Errorf("%w: negative context %d", cli.ErrUsage, cfg.Context)
	}
	a, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[1], err)
	}
	d := libdiff.Unified(args[0], args[1], string(a), string(b),
		libdiff.Context(cfg.Context),
		libdiff.Colors(cfg.colors(cc.Out)))
	if d == "" {
		return nil
	}
	if _, err := cc.Out.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
