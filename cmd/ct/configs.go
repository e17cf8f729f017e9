package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/cotree/cotree/gotree"
	"github.com/cotree/cotree/ir"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Color bool `cli:"name=color desc='force colored diff output'"`

	Main *cli.Command
}

func (cfg *MainConfig) decode(d []byte) (*ir.Node, error) {
	if cfg.Y {
		return gotree.FromYAML(d)
	}
	return gotree.FromJSON(d)
}

func (cfg *MainConfig) encode(n *ir.Node) ([]byte, error) {
	if cfg.Y {
		return gotree.ToYAML(n)
	}
	d, err := gotree.ToJSON(n)
	if err != nil {
		return nil, err
	}
	return append(d, '\n'), nil
}

func (cfg *MainConfig) writeDoc(w io.Writer, n *ir.Node) error {
	d, err := cfg.encode(n)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// useColor: explicit flag wins, otherwise color only when writing to a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type HasConfig struct {
	*MainConfig
	Has *cli.Command
}

type SetConfig struct {
	*MainConfig
	Delete bool `cli:"name=d aliases=delete desc='delete at path instead of setting'"`

	Set *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m aliases=merge-patch desc='apply as RFC 7386 merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type UpdateConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression rewriting the value at the path'"`

	Update *cli.Command
}

func readArg(cc *cli.Context, arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

func (cfg *MainConfig) readDoc(cc *cli.Context, arg string) (*ir.Node, error) {
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	n, err := cfg.decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", arg, err)
	}
	return n, nil
}
