package ir

import "slices"

// IsCloneable reports whether n is a container that clone and merge may take
// apart.  Leaves are opaque no matter what host value they carry.
func IsCloneable(n *Node) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case SeqType, MapType:
		return true
	default:
		return false
	}
}

// IsEmpty reports whether there is nothing to act on at n: absent, an
// explicit null, or a zero-length sequence.
func IsEmpty(n *Node) bool {
	if n == nil {
		return true
	}
	switch n.Type {
	case LeafType:
		return n.Value == nil
	case SeqType:
		return len(n.Elems) == 0
	default:
		return false
	}
}

// EmptyForKey returns a fresh empty container of the kind k addresses.
func EmptyForKey(k Key) *Node {
	if k.IsIndex() {
		return &Node{Type: SeqType}
	}
	return &Node{Type: MapType}
}

// EmptyLike returns a fresh empty sequence if n is a sequence, else a fresh
// empty mapping.
func EmptyLike(n *Node) *Node {
	if n != nil && n.Type == SeqType {
		return &Node{Type: SeqType}
	}
	return &Node{Type: MapType}
}

// ShallowClone copies one level of a container: the result holds the same
// children by reference.  A mapping clone keeps key order and shape; a
// sequence clone is always a plain sequence.  Non-containers come back
// unchanged.
func ShallowClone(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case SeqType:
		return &Node{Type: SeqType, Elems: slices.Clone(n.Elems)}
	case MapType:
		return &Node{
			Type:  MapType,
			Keys:  slices.Clone(n.Keys),
			Vals:  slices.Clone(n.Vals),
			Shape: n.Shape,
		}
	default:
		return n
	}
}

// CloneIfPossible shallow clones containers and passes leaves through.
func CloneIfPossible(n *Node) *Node {
	if IsCloneable(n) {
		return ShallowClone(n)
	}
	return n
}

// CloneOrFresh prepares the container a copy-on-write step descends into.
// When child is not cloneable, or its kind disagrees with the kind next
// addresses, the existing subtree is discarded for a fresh empty container;
// otherwise the step gets a shallow clone of child.
func CloneOrFresh(child *Node, next Key) *Node {
	if !IsCloneable(child) {
		return EmptyForKey(next)
	}
	if (child.Type == SeqType) != next.IsIndex() {
		return EmptyForKey(next)
	}
	return ShallowClone(child)
}
