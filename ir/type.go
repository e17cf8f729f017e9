package ir

import "fmt"

type Type int

const (
	LeafType Type = iota
	SeqType
	MapType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LeafType: "Leaf",
		SeqType:  "Seq",
		MapType:  "Map",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Leaf": LeafType,
		"Seq":  SeqType,
		"Map":  MapType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LeafType,
		SeqType,
		MapType,
	}
}

func (t Type) IsLeaf() bool {
	return t == LeafType
}
