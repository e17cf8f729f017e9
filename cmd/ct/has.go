package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree"
)

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		cfg.Has.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: has requires one argument, an object path", cli.ErrUsage)
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
		ok, err := cotree.HasPath(doc, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%t\n", ok)
	}
	return nil
}
