package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func showPlan(cfg *PlanConfig, cc *cli.Context, args []string) error {
	args, err := cfg.PlanCmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: plan takes no arguments, got %v", cli.ErrUsage, args)
	}
	p, err := cfg.Plan.load()
	if err != nil {
		return err
	}
	d, err := p.Marshal()
	if err != nil {
		return fmt.Errorf("error encoding plan: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
