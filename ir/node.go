package ir

import (
	"maps"
	"reflect"
	"slices"
)

// Shape is an opaque marker carried by non-plain mappings.  Plain mappings
// have PlainShape.  Cloning preserves the shape; converting back to host
// values may not reconstruct it (see gotree).
type Shape string

const PlainShape Shape = ""

// Node is a value in a tree: a sequence, an insertion-ordered mapping, or an
// opaque leaf.  A nil *Node means absence; an explicit null is a leaf with a
// nil Value.
//
// Nodes have no parent pointers so that a node can belong to any number of
// roots at once.  The write operations in package cotree rely on that: they
// clone only the nodes on the path to a change and share everything else.
// The mutating methods (Put, Remove) must only be called on nodes owned by
// the caller, i.e. freshly built or freshly cloned.
type Node struct {
	Type Type

	// SeqType
	Elems []*Node

	// MapType, Keys and Vals parallel, insertion order
	Keys []string
	Vals []*Node

	Shape Shape

	// LeafType
	Value any
}

func Null() *Node {
	return &Node{Type: LeafType}
}

func Leaf(v any) *Node {
	return &Node{Type: LeafType, Value: v}
}

func FromString(v string) *Node {
	return Leaf(v)
}

func FromInt(v int64) *Node {
	return Leaf(v)
}

func FromFloat(v float64) *Node {
	return Leaf(v)
}

func FromBool(v bool) *Node {
	return Leaf(v)
}

func FromSlice(elems []*Node) *Node {
	return &Node{Type: SeqType, Elems: elems}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: MapType}
	for _, kv := range kvs {
		res.PutField(kv.Key, kv.Val)
	}
	return res
}

func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: MapType}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.PutField(k, m[k])
	}
	return res
}

// Len is the number of elements or fields; 0 for leaves and nil.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Type {
	case SeqType:
		return len(n.Elems)
	case MapType:
		return len(n.Keys)
	default:
		return 0
	}
}

// Field returns the value at a mapping key, or nil when absent or when n is
// not a mapping.
func (n *Node) Field(name string) *Node {
	if n == nil || n.Type != MapType {
		return nil
	}
	for i, k := range n.Keys {
		if k == name {
			return n.Vals[i]
		}
	}
	return nil
}

// At returns the sequence element at i, or nil when out of bounds or when n
// is not a sequence.
func (n *Node) At(i int) *Node {
	if n == nil || n.Type != SeqType {
		return nil
	}
	if i < 0 || i >= len(n.Elems) {
		return nil
	}
	return n.Elems[i]
}

// Child resolves a key against n: index keys address sequences, field keys
// address mappings.  A kind mismatch yields nil, like absence.
func (n *Node) Child(k Key) *Node {
	if k.IsIndex() {
		return n.At(k.Index)
	}
	return n.Field(*k.Field)
}

// Put sets the child at k, growing a sequence with absent (nil) elements when
// the index is past the end.  Put must only be called on an owned node; it
// is a no-op when the node kind does not match the key kind.
func (n *Node) Put(k Key, v *Node) {
	if k.IsIndex() {
		if n.Type != SeqType {
			return
		}
		if k.Index < 0 {
			panic("negative index")
		}
		for len(n.Elems) <= k.Index {
			n.Elems = append(n.Elems, nil)
		}
		n.Elems[k.Index] = v
		return
	}
	if n.Type != MapType {
		return
	}
	n.PutField(*k.Field, v)
}

func (n *Node) PutField(name string, v *Node) {
	for i, k := range n.Keys {
		if k == name {
			n.Vals[i] = v
			return
		}
	}
	n.Keys = append(n.Keys, name)
	n.Vals = append(n.Vals, v)
}

// Remove deletes the child at k, splicing sequences.  Remove must only be
// called on an owned node.  It reports whether anything was removed.
func (n *Node) Remove(k Key) bool {
	if k.IsIndex() {
		if n.Type != SeqType || k.Index < 0 || k.Index >= len(n.Elems) {
			return false
		}
		n.Elems = slices.Delete(n.Elems, k.Index, k.Index+1)
		return true
	}
	if n.Type != MapType {
		return false
	}
	for i, key := range n.Keys {
		if key == *k.Field {
			n.Keys = slices.Delete(n.Keys, i, i+1)
			n.Vals = slices.Delete(n.Vals, i, i+1)
			return true
		}
	}
	return false
}

// Equal reports deep equality.  Mapping key order is irrelevant; leaf values
// compare with reflect.DeepEqual.  Two nils are equal.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Type != o.Type {
		return false
	}
	switch n.Type {
	case LeafType:
		return reflect.DeepEqual(n.Value, o.Value)
	case SeqType:
		if len(n.Elems) != len(o.Elems) {
			return false
		}
		for i := range n.Elems {
			if !n.Elems[i].Equal(o.Elems[i]) {
				return false
			}
		}
		return true
	case MapType:
		if len(n.Keys) != len(o.Keys) {
			return false
		}
		for i, k := range n.Keys {
			ov := o.Field(k)
			if ov == nil && n.Vals[i] != nil {
				return false
			}
			if !n.Vals[i].Equal(ov) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}
