package cotree

import (
	"github.com/cotree/cotree/debug"
	"github.com/cotree/cotree/ir"
)

// terminal is invoked at the last path segment with the node holding the
// terminal key and the key itself.  In a clone walk the node is owned by the
// walk and may be mutated; the return value is ignored.  In a read walk the
// return value is the walk's result.
type terminal func(parent *ir.Node, key ir.Key) *ir.Node

// walk is the one traversal behind every path operation.  With clone set it
// performs copy-on-write: each step replaces root's child at the current key
// with the recursion's result, so every ancestor of the terminal is a fresh
// clone while all other subtrees stay shared.  Without clone it reads,
// short-circuiting to missing as soon as a step cannot be resolved.
func walk(p ir.Path, root *ir.Node, at terminal, clone bool, missing *ir.Node, idx int) *ir.Node {
	key := p[idx]
	if debug.Walk() {
		debug.Logf("walk %s at %d key %s clone %v\n", p, idx, key, clone)
	}
	if idx+1 == len(p) {
		if clone {
			at(root, key)
			return root
		}
		if root == nil {
			return missing
		}
		if res := at(root, key); res != nil {
			return res
		}
		return missing
	}
	if clone {
		child := ir.CloneOrFresh(root.Child(key), p[idx+1])
		child = walk(p, child, at, true, missing, idx+1)
		root.Put(key, child)
		return root
	}
	next := root.Child(key)
	if next == nil {
		return missing
	}
	return walk(p, next, at, false, missing, idx+1)
}

// lookup is the shared read terminal: the child at key, nil when absent.
func lookup(parent *ir.Node, key ir.Key) *ir.Node {
	return parent.Child(key)
}
