// Package eval applies expr-lang expressions to tree values.  Expressions
// see the addressed value as `value` and can reach the rest of the tree with
// getpath/haspath.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/cotree/cotree"
	"github.com/cotree/cotree/gotree"
	"github.com/cotree/cotree/ir"
)

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := cotree.GetPath(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return gotree.ToGo(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			return cotree.HasPath(root, params[0].(string))
		},
			new(func(string) bool)),
	}
}

// Transform evaluates src with the whole of node bound to `value` and
// returns the result as a tree.
func Transform(node *ir.Node, src string) (*ir.Node, error) {
	return transform(node, node, src)
}

func transform(root, node *ir.Node, src string) (*ir.Node, error) {
	env := map[string]any{"value": gotree.ToGo(node)}
	opts := append(exprOpts(root), expr.Env(env))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", src, err)
	}
	return gotree.FromGo(out), nil
}

// UpdateAt rewrites the value at p with the result of src, copy-on-write:
// the returned root shares every subtree off the path with the input.
// Inside src, `value` is the current value at p (nil when absent) and
// getpath/haspath address the original root.
func UpdateAt(root *ir.Node, p ir.Path, src string) (*ir.Node, error) {
	var evalErr error
	res := cotree.Update(root, p, func(parent *ir.Node, key ir.Key) {
		out, err := transform(root, parent.Child(key), src)
		if err != nil {
			evalErr = err
			return
		}
		parent.Put(key, out)
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return res, nil
}

// UpdateAtPath is UpdateAt on a "$"-syntax path expression.
func UpdateAtPath(root *ir.Node, pathExpr, src string) (*ir.Node, error) {
	p, err := ir.ParsePath(pathExpr)
	if err != nil {
		return nil, err
	}
	return UpdateAt(root, p, src)
}
