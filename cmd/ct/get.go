package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree"
)

func normPath(p string) string {
	if p == "" || p[0] != '$' {
		return "$" + p
	}
	return p
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
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
		res, err := cotree.GetPath(doc, path)
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
