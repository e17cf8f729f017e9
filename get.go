package cotree

import "github.com/cotree/cotree/ir"

// Get returns the node at p, or nil when any step cannot be resolved.  An
// empty path returns root.  Get never allocates and never mutates.
func Get(root *ir.Node, p ir.Path) *ir.Node {
	if len(p) == 0 {
		return root
	}
	if len(p) == 1 {
		return root.Child(p[0])
	}
	return walk(p, root, lookup, false, nil, 0)
}

// GetDefault is Get with a fallback for unresolvable paths.
func GetDefault(root *ir.Node, p ir.Path, missing *ir.Node) *ir.Node {
	if len(p) == 0 {
		if root == nil {
			return missing
		}
		return root
	}
	if len(p) == 1 {
		if c := root.Child(p[0]); c != nil {
			return c
		}
		return missing
	}
	return walk(p, root, lookup, false, missing, 0)
}

// GetPath is Get on a "$"-syntax path expression.  The only possible error
// is a path syntax error; absence still comes back as nil.
func GetPath(root *ir.Node, expr string) (*ir.Node, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return Get(root, p), nil
}

// Has reports whether every step of p resolves.  A present null counts: only
// absence is false.
func Has(root *ir.Node, p ir.Path) bool {
	if len(p) == 0 {
		return root != nil
	}
	if len(p) == 1 {
		return root.Child(p[0]) != nil
	}
	return walk(p, root, lookup, false, nil, 0) != nil
}

// HasPath is Has on a "$"-syntax path expression.
func HasPath(root *ir.Node, expr string) (bool, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return false, err
	}
	return Has(root, p), nil
}
