package ir

import (
	"errors"
	"testing"
)

type parseTest struct {
	Expr string
	Want Path
	Err  bool
}

var parseTests = []parseTest{
	{
		Expr: "$",
		Want: Path{},
	},
	{
		Expr: "$.f",
		Want: Path{FieldKey("f")},
	},
	{
		Expr: "$[0]",
		Want: Path{IndexKey(0)},
	},
	{
		Expr: "$.a.b[2].c",
		Want: Path{FieldKey("a"), FieldKey("b"), IndexKey(2), FieldKey("c")},
	},
	{
		Expr: "$.'f[3]'[2]",
		Want: Path{FieldKey("f[3]"), IndexKey(2)},
	},
	{
		Expr: "$.'$f[\\'3]'[2]",
		Want: Path{FieldKey("$f['3]"), IndexKey(2)},
	},
	{
		Expr: "$.''",
		Want: Path{FieldKey("")},
	},
	{
		Expr: `$.'back\\slash'`,
		Want: Path{FieldKey(`back\slash`)},
	},
	{Expr: "", Err: true},
	{Expr: "f.g", Err: true},
	{Expr: "$.", Err: true},
	{Expr: "$[", Err: true},
	{Expr: "$[x]", Err: true},
	{Expr: "$[-1]", Err: true},
	{Expr: "$[*]", Err: true},
	{Expr: "$..f", Err: true},
	{Expr: "$.'unterminated", Err: true},
}

func TestParsePath(t *testing.T) {
	for _, tt := range parseTests {
		p, err := ParsePath(tt.Expr)
		if tt.Err {
			if err == nil {
				t.Errorf("%q: expected error, got %s", tt.Expr, p)
			} else if !errors.Is(err, ErrPathSyntax) {
				t.Errorf("%q: error %v does not wrap ErrPathSyntax", tt.Expr, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.Expr, err)
			continue
		}
		if len(p) != len(tt.Want) {
			t.Errorf("%q: got %d keys, want %d", tt.Expr, len(p), len(tt.Want))
			continue
		}
		for i, k := range p {
			w := tt.Want[i]
			if k.IsIndex() != w.IsIndex() {
				t.Errorf("%q key %d: kind mismatch", tt.Expr, i)
				continue
			}
			if k.IsIndex() && k.Index != w.Index {
				t.Errorf("%q key %d: index %d != %d", tt.Expr, i, k.Index, w.Index)
			}
			if !k.IsIndex() && *k.Field != *w.Field {
				t.Errorf("%q key %d: field %q != %q", tt.Expr, i, *k.Field, *w.Field)
			}
		}
	}
}

func TestPathString(t *testing.T) {
	for _, expr := range []string{
		"$",
		"$.f",
		"$[0]",
		"$.a.b[2].c",
		"$.'f[3]'[2]",
	} {
		p, err := ParsePath(expr)
		if err != nil {
			t.Fatalf("%q: %v", expr, err)
		}
		if got := p.String(); got != expr {
			t.Errorf("round trip %q gave %q", expr, got)
		}
	}
}

// Rendered paths must parse back to the same keys, whatever the field holds.
func TestFieldStringRoundTrip(t *testing.T) {
	for _, field := range []string{
		"plain",
		"dotted.name",
		"it's",
		`trailing\`,
		`\'`,
		`a\\b`,
		"",
	} {
		p := Path{FieldKey(field)}
		got, err := ParsePath(p.String())
		if err != nil {
			t.Errorf("%q rendered as %q: %v", field, p.String(), err)
			continue
		}
		if len(got) != 1 || got[0].IsIndex() || *got[0].Field != field {
			t.Errorf("%q rendered as %q, parsed back as %s", field, p.String(), got)
		}
	}
}
