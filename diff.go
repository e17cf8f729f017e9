package cotree

import (
	"github.com/cotree/cotree/debug"
	"github.com/cotree/cotree/ir"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Modified
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "<unknown change>"
	}
}

// Change is one difference between two trees, addressed by path.  From is
// nil for additions, To is nil for removals.
type Change struct {
	Path     ir.Path
	Kind     ChangeKind
	From, To *ir.Node
}

// Diff lists the paths at which from and to disagree.  Containers of the
// same kind recurse: mappings per key, sequences per index.  Anything else
// that differs is a single Modified at its path.  Equal trees diff to nil.
func Diff(from, to *ir.Node) []Change {
	return diff(nil, ir.Path{}, from, to)
}

func diff(dst []Change, at ir.Path, from, to *ir.Node) []Change {
	if debug.Diff() {
		debug.Logf("diff at %s\n", at)
	}
	switch {
	case from == nil && to == nil:
		return dst
	case from == nil:
		return append(dst, Change{Path: at, Kind: Added, To: to})
	case to == nil:
		return append(dst, Change{Path: at, Kind: Removed, From: from})
	}
	if from.Type != to.Type {
		return append(dst, Change{Path: at, Kind: Modified, From: from, To: to})
	}
	switch from.Type {
	case ir.MapType:
		for i, k := range from.Keys {
			dst = diff(dst, at.Child(ir.FieldKey(k)), from.Vals[i], to.Field(k))
		}
		for i, k := range to.Keys {
			if from.Field(k) != nil {
				continue
			}
			dst = diff(dst, at.Child(ir.FieldKey(k)), nil, to.Vals[i])
		}
		return dst
	case ir.SeqType:
		n := max(len(from.Elems), len(to.Elems))
		for i := range n {
			dst = diff(dst, at.Child(ir.IndexKey(i)), from.At(i), to.At(i))
		}
		return dst
	case ir.LeafType:
		if from.Equal(to) {
			return dst
		}
		return append(dst, Change{Path: at, Kind: Modified, From: from, To: to})
	default:
		panic("type")
	}
}
