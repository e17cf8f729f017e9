package gotree

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/cotree/cotree/ir"
)

var ErrInvalidJSON = errors.New("invalid json document")

// FromJSON parses a JSON document into a tree, preserving object key order.
// Numbers come back as float64 leaves, as in the host JSON model.
func FromJSON(d []byte) (*ir.Node, error) {
	if !gjson.ValidBytes(d) {
		return nil, fmt.Errorf("%w: %.40q", ErrInvalidJSON, d)
	}
	return fromResult(gjson.ParseBytes(d)), nil
}

func fromResult(r gjson.Result) *ir.Node {
	switch {
	case r.IsObject():
		res := &ir.Node{Type: ir.MapType}
		r.ForEach(func(k, v gjson.Result) bool {
			res.PutField(k.String(), fromResult(v))
			return true
		})
		return res
	case r.IsArray():
		var elems []*ir.Node
		r.ForEach(func(_, v gjson.Result) bool {
			elems = append(elems, fromResult(v))
			return true
		})
		return ir.FromSlice(elems)
	default:
		return ir.Leaf(r.Value())
	}
}

// ToJSON renders a tree as JSON, keeping mapping key order.  Absent (nil)
// nodes render as null.  Leaf values marshal with encoding/json, so a leaf
// the tree carries opaquely must still be a marshalable value to pass
// through here.
func ToJSON(n *ir.Node) ([]byte, error) {
	return appendJSON(make([]byte, 0, 64), n)
}

func appendJSON(buf []byte, n *ir.Node) ([]byte, error) {
	if n == nil {
		return append(buf, "null"...), nil
	}
	switch n.Type {
	case ir.LeafType:
		d, err := json.Marshal(n.Value)
		if err != nil {
			return nil, err
		}
		return append(buf, d...), nil
	case ir.SeqType:
		buf = append(buf, '[')
		for i, e := range n.Elems {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			buf, err = appendJSON(buf, e)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case ir.MapType:
		buf = append(buf, '{')
		for i, k := range n.Keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kd, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf = append(buf, kd...)
			buf = append(buf, ':')
			buf, err = appendJSON(buf, n.Vals[i])
			if err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	default:
		panic("type")
	}
}
