package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cotree/cotree"
	"github.com/cotree/cotree/gotree"
	"github.com/cotree/cotree/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	from, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	to, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return err
	}
	changes := cotree.Diff(from, to)
	return writeChanges(cc.Out, changes, cfg.useColor(cc.Out))
}

func writeChanges(w io.Writer, changes []cotree.Change, colored bool) error {
	sprintf := fmt.Sprintf
	green, red, yellow := sprintf, sprintf, sprintf
	if colored {
		green = color.GreenString
		red = color.RedString
		yellow = color.YellowString
	}
	for _, ch := range changes {
		var line string
		switch ch.Kind {
		case cotree.Added:
			line = green("+ %s %s", ch.Path, mustJSON(ch.To))
		case cotree.Removed:
			line = red("- %s %s", ch.Path, mustJSON(ch.From))
		case cotree.Modified:
			line = yellow("~ %s %s", ch.Path, modifiedText(ch, colored))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// modifiedText renders a modification, char-diffing string leaves so small
// edits in large strings stay readable.
func modifiedText(ch cotree.Change, colored bool) string {
	fromS, fromOK := stringLeaf(ch.From)
	toS, toOK := stringLeaf(ch.To)
	if colored && fromOK && toOK {
		dmp := diffpatch.New()
		diffs := dmp.DiffMain(fromS, toS, false)
		return dmp.DiffPrettyText(diffs)
	}
	return fmt.Sprintf("%s -> %s", mustJSON(ch.From), mustJSON(ch.To))
}

func stringLeaf(n *ir.Node) (string, bool) {
	if n == nil || n.Type != ir.LeafType {
		return "", false
	}
	s, ok := n.Value.(string)
	return s, ok
}

func mustJSON(n *ir.Node) string {
	d, err := gotree.ToJSON(n)
	if err != nil {
		return fmt.Sprintf("%v", gotree.ToGo(n))
	}
	return string(d)
}
