package gotree

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/cotree/cotree/ir"
)

type element struct{ id int }

func (element) OpaqueTree() {}

func TestAtomic(t *testing.T) {
	for _, v := range []any{
		time.Now(),
		&time.Time{},
		regexp.MustCompile("x"),
		element{id: 1},
	} {
		if !Atomic(v) {
			t.Errorf("%T should be atomic", v)
		}
	}
	for _, v := range []any{nil, 1, "s", map[string]any{}, []any{}} {
		if Atomic(v) {
			t.Errorf("%T should not be atomic", v)
		}
	}
}

func TestCloneable(t *testing.T) {
	for _, v := range []any{map[string]any{}, []any{1}, struct{ X int }{}, map[string]int{}} {
		if !Cloneable(v) {
			t.Errorf("%T should be cloneable", v)
		}
	}
	for _, v := range []any{nil, 1, "s", []byte("b"), time.Now(), element{}} {
		if Cloneable(v) {
			t.Errorf("%T should not be cloneable", v)
		}
	}
}

func TestFromGoContainers(t *testing.T) {
	n := FromGo(map[string]any{
		"b": []any{1, "x", nil},
		"a": map[string]any{"k": true},
	})
	if n.Type != ir.MapType {
		t.Fatalf("type %s", n.Type)
	}
	if diff := cmp.Diff([]string{"a", "b"}, n.Keys); diff != "" {
		t.Errorf("keys sorted (-want +got):\n%s", diff)
	}
	seq := n.Field("b")
	if seq.Type != ir.SeqType || seq.Len() != 3 {
		t.Fatalf("b: %v", seq)
	}
	if seq.At(2).Type != ir.LeafType || seq.At(2).Value != nil {
		t.Errorf("nil element should be a null leaf")
	}
}

func TestFromGoAtomicStaysLeaf(t *testing.T) {
	when := time.Now()
	n := FromGo(map[string]any{"t": when, "e": element{id: 7}})
	if n.Field("t").Type != ir.LeafType {
		t.Error("time was taken apart")
	}
	if got := n.Field("e"); got.Type != ir.LeafType || got.Value.(element).id != 7 {
		t.Errorf("marker value was taken apart: %v", got)
	}
}

func TestFromGoStructShape(t *testing.T) {
	type widget struct {
		Name string
		Size int

		hidden bool
	}
	n := FromGo(widget{Name: "w", Size: 3, hidden: true})
	if n.Type != ir.MapType {
		t.Fatalf("type %s", n.Type)
	}
	if n.Shape == ir.PlainShape {
		t.Error("struct should carry a shape tag")
	}
	if n.Len() != 2 {
		t.Errorf("unexported field leaked: %v", n.Keys)
	}
	if n.Field("Name").Value != "w" {
		t.Errorf("Name = %v", n.Field("Name").Value)
	}
	// shape survives a shallow clone (I3) ...
	if c := ir.ShallowClone(n); c.Shape != n.Shape {
		t.Error("clone lost the shape")
	}
	// ... but degrades to a plain map on the way back out
	back := ToGo(n)
	m, ok := back.(map[string]any)
	if !ok {
		t.Fatalf("ToGo gave %T", back)
	}
	if m["Size"] != int64(3) && m["Size"] != 3 {
		t.Errorf("Size = %v", m["Size"])
	}
}

func TestToGoRoundTrip(t *testing.T) {
	in := map[string]any{
		"a": []any{"x", true},
		"n": nil,
	}
	got := ToGo(FromGo(in))
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestFromGoNodePassthrough(t *testing.T) {
	n := ir.FromInt(1)
	if FromGo(n) != n {
		t.Error("*ir.Node should pass through")
	}
}
