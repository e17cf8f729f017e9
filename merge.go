package cotree

import (
	"github.com/cotree/cotree/debug"
	"github.com/cotree/cotree/ir"
)

// Merge combines two whole trees into a new one, leaving both inputs
// untouched.  Where base and override disagree on container kind — or where
// either side is a leaf — override wins outright.  Sequences concatenate,
// base elements first.  Mappings merge per key, recursively for cloneable
// override values; the result keeps base's key order, with override-only
// keys appended in override's order.
//
// The result shares unmerged subtrees with its inputs by reference.
func Merge(base, override *ir.Node) *ir.Node {
	if debug.Merge() {
		debug.Logf("merge %s with %s\n", kindString(base), kindString(override))
	}
	if !ir.IsCloneable(base) || !ir.IsCloneable(override) || base.Type != override.Type {
		return ir.CloneIfPossible(override)
	}
	switch override.Type {
	case ir.SeqType:
		elems := make([]*ir.Node, 0, len(base.Elems)+len(override.Elems))
		for _, e := range base.Elems {
			elems = append(elems, ir.CloneIfPossible(e))
		}
		for _, e := range override.Elems {
			elems = append(elems, ir.CloneIfPossible(e))
		}
		return ir.FromSlice(elems)

	case ir.MapType:
		res := &ir.Node{Type: ir.MapType, Shape: base.Shape}
		for i, k := range base.Keys {
			res.PutField(k, ir.CloneIfPossible(base.Vals[i]))
		}
		for i, k := range override.Keys {
			ov := override.Vals[i]
			if ir.IsCloneable(ov) {
				res.PutField(k, Merge(base.Field(k), ov))
				continue
			}
			res.PutField(k, ov)
		}
		return res

	default:
		panic("type")
	}
}

func kindString(n *ir.Node) string {
	if n == nil {
		return "<absent>"
	}
	return n.Type.String()
}
