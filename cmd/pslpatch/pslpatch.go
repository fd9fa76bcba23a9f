package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pslkit/psl"
	"github.com/scott-cotton/cli"
)

func pslMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func writeReport(w io.Writer, rep *psl.Report) error {
	_, err := io.WriteString(w, rep.String())
	return err
}
