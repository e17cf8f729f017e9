package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one document", cli.ErrUsage)
	}
	res, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		override, err := cfg.readDoc(cc, arg)
		if err != nil {
			return err
		}
		res = cotree.Merge(res, override)
	}
	return cfg.writeDoc(cc.Out, res)
}
