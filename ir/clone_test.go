package ir

import (
	"testing"
	"time"
)

func TestIsCloneable(t *testing.T) {
	if IsCloneable(nil) {
		t.Error("nil cloneable")
	}
	if IsCloneable(Leaf(time.Now())) {
		t.Error("leaf cloneable")
	}
	if !IsCloneable(&Node{Type: SeqType}) || !IsCloneable(&Node{Type: MapType}) {
		t.Error("containers should be cloneable")
	}
}

func TestIsEmpty(t *testing.T) {
	for _, tt := range []struct {
		node *Node
		want bool
	}{
		{nil, true},
		{Null(), true},
		{&Node{Type: SeqType}, true},
		{FromSlice([]*Node{FromInt(1)}), false},
		{&Node{Type: MapType}, false},
		{FromInt(0), false},
	} {
		if got := IsEmpty(tt.node); got != tt.want {
			t.Errorf("IsEmpty(%v) = %t", tt.node, got)
		}
	}
}

func TestShallowCloneShares(t *testing.T) {
	inner := FromKeyVals([]KeyVal{{Key: "deep", Val: FromInt(1)}})
	m := &Node{Type: MapType, Shape: Shape("widget")}
	m.PutField("a", inner)
	c := ShallowClone(m)
	if c == m {
		t.Fatal("clone is the original")
	}
	if c.Field("a") != inner {
		t.Error("children must be shared by reference")
	}
	if c.Shape != Shape("widget") {
		t.Error("shape not preserved")
	}
	c.PutField("b", FromInt(2))
	if m.Field("b") != nil {
		t.Error("mutating the clone leaked into the original")
	}

	s := FromSlice([]*Node{inner})
	sc := ShallowClone(s)
	sc.Put(IndexKey(0), FromInt(9))
	if s.Elems[0] != inner {
		t.Error("sequence clone shares backing array")
	}
}

func TestCloneIfPossiblePassesLeaves(t *testing.T) {
	leaf := Leaf(time.Now())
	if CloneIfPossible(leaf) != leaf {
		t.Error("leaf should come back unchanged")
	}
	if CloneIfPossible(nil) != nil {
		t.Error("nil should come back unchanged")
	}
}

func TestEmptyForKey(t *testing.T) {
	if n := EmptyForKey(IndexKey(3)); n.Type != SeqType {
		t.Errorf("index key: %s", n.Type)
	}
	if n := EmptyForKey(FieldKey("f")); n.Type != MapType {
		t.Errorf("field key: %s", n.Type)
	}
}

func TestEmptyLike(t *testing.T) {
	if n := EmptyLike(FromSlice(nil)); n.Type != SeqType || n.Len() != 0 {
		t.Errorf("like seq: %s", n.Type)
	}
	if n := EmptyLike(FromInt(1)); n.Type != MapType {
		t.Errorf("like leaf: %s", n.Type)
	}
	if n := EmptyLike(nil); n.Type != MapType {
		t.Errorf("like nil: %s", n.Type)
	}
}

func TestCloneOrFresh(t *testing.T) {
	seq := FromSlice([]*Node{FromInt(1)})
	// kind agrees: shallow clone
	if c := CloneOrFresh(seq, IndexKey(0)); c == seq || c.Type != SeqType || c.Len() != 1 {
		t.Errorf("agreeing kind: %v", c)
	}
	// kind disagrees: existing subtree is discarded even though cloneable
	if c := CloneOrFresh(seq, FieldKey("f")); c.Type != MapType || c.Len() != 0 {
		t.Errorf("disagreeing kind: %v", c)
	}
	// not cloneable: fresh container for the key
	if c := CloneOrFresh(FromInt(1), IndexKey(0)); c.Type != SeqType || c.Len() != 0 {
		t.Errorf("leaf child: %v", c)
	}
	if c := CloneOrFresh(nil, FieldKey("f")); c.Type != MapType {
		t.Errorf("absent child: %v", c)
	}
}
