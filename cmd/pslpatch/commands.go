package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "pslpatch").
		WithSynopsis("pslpatch [opts] command [opts]").
		WithDescription("pslpatch applies patch plans to prisma schema files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pslMain(cfg, cc, args)
		}).
		WithSubs(
			ApplyCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg),
			ViewCommand(cfg),
			PlanCommand(cfg))
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, cfg.Plan.cliOpts()...)
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a").
		WithSynopsis("apply [-plan file] [-overlay file] [-o out] [-n] [-strict] [-backup] [-v] [schema]").
		WithDescription("apply a plan to a schema file (default schema.prisma)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return apply(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts := cfg.Plan.cliOpts()
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [-plan file] [-overlay file] [schema]").
		WithDescription("report the status of each plan step, exiting 1 if any step would change the schema").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-U n] a b").
		WithDescription("unified diff of schema files, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view schema files in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func PlanCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PlanConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.PlanCmd, "plan").
		WithAliases("p").
		WithSynopsis("plan [-plan file] [-overlay file]").
		WithDescription("print the effective plan").
		WithOpts(cfg.Plan.cliOpts()...).
		WithRun(func(cc *cli.Context, args []string) error {
			return showPlan(cfg, cc, args)
		})
}
