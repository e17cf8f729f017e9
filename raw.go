package cotree

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cotree/cotree/ir"
)

// Raw operations work directly on JSON documents for callers that have bytes
// rather than trees.  They accept the same "$"-syntax paths as the rest of
// the package and delegate the byte surgery to gjson/sjson.

// GetRaw returns the raw JSON of the value at expr in doc, or nil when the
// path does not resolve.
func GetRaw(doc []byte, expr string) ([]byte, error) {
	gp, err := gjsonPath(expr)
	if err != nil {
		return nil, err
	}
	res := gjson.GetBytes(doc, gp)
	if !res.Exists() {
		return nil, nil
	}
	return []byte(res.Raw), nil
}

// SetRaw returns doc with the raw JSON value at expr replaced or inserted.
func SetRaw(doc []byte, expr string, value []byte) ([]byte, error) {
	gp, err := gjsonPath(expr)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(doc, gp, value)
}

// DeleteRaw returns doc without the value at expr.
func DeleteRaw(doc []byte, expr string) ([]byte, error) {
	gp, err := gjsonPath(expr)
	if err != nil {
		return nil, err
	}
	return sjson.DeleteBytes(doc, gp)
}

// gjsonPath translates a "$"-syntax path into gjson/sjson dotted syntax.
func gjsonPath(expr string) (string, error) {
	p, err := ir.ParsePath(expr)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(p))
	for _, k := range p {
		if k.IsIndex() {
			parts = append(parts, strconv.Itoa(k.Index))
			continue
		}
		parts = append(parts, escapeGJSON(*k.Field))
	}
	return strings.Join(parts, "."), nil
}

func escapeGJSON(f string) string {
	if !strings.ContainsAny(f, `.*?\|#@`) {
		return f
	}
	var b strings.Builder
	for _, r := range f {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
