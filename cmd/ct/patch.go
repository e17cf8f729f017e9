package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree"
	"github.com/cotree/cotree/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	patchDoc, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(cc, arg)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.MergePatch {
			res, err = cotree.ApplyMergePatch(doc, patchDoc)
		} else {
			res, err = cotree.ApplyPatch(doc, patchDoc)
		}
		if err != nil {
			return fmt.Errorf("error patching %q: %w", arg, err)
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
