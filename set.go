package cotree

import "github.com/cotree/cotree/ir"

// Update is the copy-on-write primitive under every write: it clones the
// nodes from root down to the terminal of p, creating fresh containers where
// a step is absent or of the wrong kind, and hands fn the owned terminal
// container together with the final key.  fn may set, delete or transform at
// that key.  The new root is returned; root itself is never touched.
//
// An empty path returns root unchanged.
func Update(root *ir.Node, p ir.Path, fn func(parent *ir.Node, key ir.Key)) *ir.Node {
	if len(p) == 0 {
		return root
	}
	at := func(parent *ir.Node, key ir.Key) *ir.Node {
		fn(parent, key)
		return nil
	}
	first := ir.CloneOrFresh(root, p[0])
	return walk(p, first, at, true, nil, 0)
}

// UpdatePath is Update on a "$"-syntax path expression.
func UpdatePath(root *ir.Node, expr string, fn func(parent *ir.Node, key ir.Key)) (*ir.Node, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return Update(root, p, fn), nil
}

// Set returns a new root with value at p.  Missing intermediate containers
// are created; an existing container whose kind disagrees with the next key
// is replaced outright, so Set($.x.y, v) over {x: [1,2]} yields {x: {y: v}}.
func Set(root *ir.Node, p ir.Path, value *ir.Node) *ir.Node {
	return Update(root, p, func(parent *ir.Node, key ir.Key) {
		parent.Put(key, value)
	})
}

// SetPath is Set on a "$"-syntax path expression.
func SetPath(root *ir.Node, expr string, value *ir.Node) (*ir.Node, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return Set(root, p, value), nil
}

// Delete returns a new root without the value at p.  Sequences splice.
// Like every write it copies the containers along p, including ones it has
// to create when the path was not there to begin with.
func Delete(root *ir.Node, p ir.Path) *ir.Node {
	return Update(root, p, func(parent *ir.Node, key ir.Key) {
		parent.Remove(key)
	})
}

// DeletePath is Delete on a "$"-syntax path expression.
func DeletePath(root *ir.Node, expr string) (*ir.Node, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return nil, err
	}
	return Delete(root, p), nil
}
