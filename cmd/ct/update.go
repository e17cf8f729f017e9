package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree/eval"
)

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		cfg.Update.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: update requires -e <expr>", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: update requires an object path", cli.ErrUsage)
	}
	path := normPath(args[0])
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(cc, arg)
		if err != nil {
			return err
		}
		res, err := eval.UpdateAtPath(doc, path, cfg.Expr)
		if err != nil {
			return fmt.Errorf("error updating %q: %w", arg, err)
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
