package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree"
	"github.com/cotree/cotree/ir"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires an object path", cli.ErrUsage)
	}
	path := normPath(args[0])
	args = args[1:]

	var value *ir.Node
	if !cfg.Delete {
		if len(args) == 0 {
			return fmt.Errorf("%w: set requires a value", cli.ErrUsage)
		}
		value = parseValue(cfg.MainConfig, args[0])
		args = args[1:]
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := cfg.readDoc(cc, arg)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Delete {
			res, err = cotree.DeletePath(doc, path)
		} else {
			res, err = cotree.SetPath(doc, path, value)
		}
		if err != nil {
			return err
		}
		if err := cfg.writeDoc(cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// parseValue decodes a value argument in the i/o format, falling back to a
// string leaf so that bare words need no quoting.
func parseValue(cfg *MainConfig, arg string) *ir.Node {
	n, err := cfg.decode([]byte(arg))
	if err != nil {
		return ir.FromString(arg)
	}
	return n
}
