package ir

import "testing"

func TestChild(t *testing.T) {
	m := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromSlice([]*Node{FromString("x"), FromString("y")})},
	})
	if got := m.Child(FieldKey("a")); got == nil || got.Value != int64(1) {
		t.Errorf("child a: got %v", got)
	}
	if got := m.Child(FieldKey("missing")); got != nil {
		t.Errorf("missing field: got %v", got)
	}
	if got := m.Child(IndexKey(0)); got != nil {
		t.Errorf("index into mapping: got %v", got)
	}
	seq := m.Field("b")
	if got := seq.Child(IndexKey(1)); got == nil || got.Value != "y" {
		t.Errorf("child [1]: got %v", got)
	}
	if got := seq.Child(IndexKey(5)); got != nil {
		t.Errorf("out of bounds: got %v", got)
	}
	var absent *Node
	if got := absent.Child(FieldKey("a")); got != nil {
		t.Errorf("nil node child: got %v", got)
	}
}

func TestPutOrder(t *testing.T) {
	m := &Node{Type: MapType}
	m.PutField("b", FromInt(1))
	m.PutField("a", FromInt(2))
	m.PutField("b", FromInt(3))
	if len(m.Keys) != 2 || m.Keys[0] != "b" || m.Keys[1] != "a" {
		t.Fatalf("keys %v", m.Keys)
	}
	if m.Field("b").Value != int64(3) {
		t.Errorf("overwrite did not keep position")
	}
}

func TestPutPadsSequence(t *testing.T) {
	s := &Node{Type: SeqType}
	s.Put(IndexKey(2), FromString("z"))
	if len(s.Elems) != 3 {
		t.Fatalf("len %d", len(s.Elems))
	}
	if s.Elems[0] != nil || s.Elems[1] != nil {
		t.Errorf("padding should be absent")
	}
	if s.At(2).Value != "z" {
		t.Errorf("elem 2: %v", s.At(2))
	}
}

func TestRemove(t *testing.T) {
	s := FromSlice([]*Node{FromInt(1), FromInt(2), FromInt(3)})
	if !s.Remove(IndexKey(1)) {
		t.Fatal("remove [1]")
	}
	if s.Len() != 2 || s.At(1).Value != int64(3) {
		t.Errorf("splice failed: %v", s.Elems)
	}
	m := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}})
	if !m.Remove(FieldKey("a")) {
		t.Fatal("remove a")
	}
	if m.Len() != 1 || m.Field("a") != nil {
		t.Errorf("remove left %v", m.Keys)
	}
	if m.Remove(FieldKey("a")) {
		t.Errorf("second remove reported true")
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromSlice([]*Node{FromBool(true), Null()})},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromSlice([]*Node{FromBool(true), Null()})},
		{Key: "x", Val: FromInt(1)},
	})
	if !a.Equal(b) {
		t.Errorf("key order should not matter")
	}
	if a.Equal(nil) {
		t.Errorf("non-nil equals nil")
	}
	var n *Node
	if !n.Equal(nil) {
		t.Errorf("nil should equal nil")
	}
	c := FromSlice([]*Node{FromBool(true)})
	if a.Field("y").Equal(c) {
		t.Errorf("length mismatch should differ")
	}
}
