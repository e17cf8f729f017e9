package gotree

import (
	"github.com/goccy/go-yaml"

	"github.com/cotree/cotree/ir"
)

// FromYAML parses a YAML document into a tree.  Mapping key order is
// preserved by decoding into ordered maps.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAMLValue(v), nil
}

func fromYAMLValue(v any) *ir.Node {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := &ir.Node{Type: ir.MapType}
		for _, item := range x {
			res.PutField(yamlKey(item.Key), fromYAMLValue(item.Value))
		}
		return res
	case []any:
		elems := make([]*ir.Node, len(x))
		for i, e := range x {
			elems[i] = fromYAMLValue(e)
		}
		return ir.FromSlice(elems)
	default:
		return FromGo(v)
	}
}

func yamlKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	d, err := yaml.Marshal(k)
	if err != nil {
		panic(err)
	}
	return string(trimNewline(d))
}

func trimNewline(d []byte) []byte {
	for len(d) > 0 && (d[len(d)-1] == '\n' || d[len(d)-1] == '\r') {
		d = d[:len(d)-1]
	}
	return d
}

// ToYAML renders a tree as YAML, keeping mapping key order.
func ToYAML(n *ir.Node) ([]byte, error) {
	return yaml.Marshal(toYAMLValue(n))
}

func toYAMLValue(n *ir.Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case ir.LeafType:
		return n.Value
	case ir.SeqType:
		res := make([]any, len(n.Elems))
		for i, e := range n.Elems {
			res[i] = toYAMLValue(e)
		}
		return res
	case ir.MapType:
		res := make(yaml.MapSlice, len(n.Keys))
		for i, k := range n.Keys {
			res[i] = yaml.MapItem{Key: k, Value: toYAMLValue(n.Vals[i])}
		}
		return res
	default:
		panic("type")
	}
}
