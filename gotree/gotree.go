// Package gotree converts between host representations — plain Go values,
// JSON, YAML — and ir trees.  Classification of what is a container and what
// is an opaque leaf happens here, once, at the boundary; the core never
// re-inspects host values.
package gotree

import (
	"maps"
	"reflect"
	"regexp"
	"slices"
	"time"

	"github.com/cotree/cotree/ir"
)

// Opaque marks a host value as atomic: FromGo keeps it whole as a leaf no
// matter how container-shaped it is.  This is the extension point for
// framework values that must never be taken apart field by field.
type Opaque interface {
	OpaqueTree()
}

// Atomic reports whether v belongs to the atomic exclusion set: times,
// regexps, and Opaque values.
func Atomic(v any) bool {
	switch v.(type) {
	case time.Time, *time.Time:
		return true
	case regexp.Regexp, *regexp.Regexp:
		return true
	case Opaque:
		return true
	default:
		return false
	}
}

// Cloneable reports whether FromGo would classify v as a container: non-nil,
// sequence- or mapping-shaped, and not atomic.
func Cloneable(v any) bool {
	if v == nil || Atomic(v) {
		return false
	}
	switch v.(type) {
	case map[string]any, []any:
		return true
	case []byte:
		return false
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}

// FromGo builds a tree from a Go value.  map[string]any becomes a mapping
// with sorted keys (Go maps have no order to preserve), []any a sequence,
// structs a mapping tagged with the struct type as its shape, and everything
// else — including every Atomic value — an opaque leaf.  *ir.Node values
// pass through unchanged.
func FromGo(v any) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	if n, ok := v.(*ir.Node); ok {
		return n
	}
	if Atomic(v) {
		return ir.Leaf(v)
	}
	switch x := v.(type) {
	case map[string]any:
		res := &ir.Node{Type: ir.MapType}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			res.PutField(k, FromGo(x[k]))
		}
		return res
	case []any:
		elems := make([]*ir.Node, len(x))
		for i, e := range x {
			elems[i] = FromGo(e)
		}
		return ir.FromSlice(elems)
	case []byte:
		return ir.Leaf(x)
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) *ir.Node {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return ir.Leaf(rv.Interface())
		}
		elems := make([]*ir.Node, rv.Len())
		for i := range rv.Len() {
			elems[i] = FromGo(rv.Index(i).Interface())
		}
		return ir.FromSlice(elems)

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return ir.Leaf(rv.Interface())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		res := &ir.Node{Type: ir.MapType}
		for _, k := range keys {
			res.PutField(k, FromGo(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()))
		}
		return res

	case reflect.Struct:
		return fromStruct(rv)

	case reflect.Pointer:
		if rv.IsNil() {
			return ir.Null()
		}
		if rv.Elem().Kind() == reflect.Struct {
			return fromStruct(rv.Elem())
		}
		return ir.Leaf(rv.Interface())

	default:
		return ir.Leaf(rv.Interface())
	}
}

// fromStruct copies the exported fields of a non-plain mapping shape, field
// by field, keeping the type name as the shape tag.
func fromStruct(rv reflect.Value) *ir.Node {
	ty := rv.Type()
	res := &ir.Node{Type: ir.MapType, Shape: ir.Shape(ty.String())}
	for i := range ty.NumField() {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		res.PutField(f.Name, FromGo(rv.Field(i).Interface()))
	}
	return res
}

// ToGo converts a tree back to plain Go values: mappings to map[string]any,
// sequences to []any, leaves to their values.  Shape tags are dropped — a
// non-plain mapping degrades to a plain map, which is the documented loss of
// round-tripping shaped values through a tree.
func ToGo(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.LeafType:
		return n.Value
	case ir.SeqType:
		res := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			res[i] = ToGo(e)
		}
		return res
	case ir.MapType:
		res := make(map[string]any, len(n.Keys))
		for i, k := range n.Keys {
			res[k] = ToGo(n.Vals[i])
		}
		return res
	default:
		panic("type")
	}
}
