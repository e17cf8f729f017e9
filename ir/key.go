package ir

import (
	"bytes"
	"fmt"
	"strings"
)

// Key is one step of a Path: either a non-negative sequence index or a
// mapping field name.
type Key struct {
	Field *string
	Index int
}

func IndexKey(i int) Key {
	if i < 0 {
		panic("negative index")
	}
	return Key{Index: i}
}

func FieldKey(f string) Key {
	return Key{Field: &f}
}

func (k Key) IsIndex() bool {
	return k.Field == nil
}

func (k Key) String() string {
	if k.IsIndex() {
		return fmt.Sprintf("[%d]", k.Index)
	}
	return "." + fieldString(*k.Field)
}

func fieldString(f string) string {
	if f != "" && strings.IndexAny(f, `'.*$[]\`) == -1 {
		return f
	}
	f = strings.ReplaceAll(f, `\`, `\\`)
	f = strings.ReplaceAll(f, `'`, `\'`)
	return "'" + f + "'"
}

// Path addresses a position in a tree, root to target.
type Path []Key

func (p Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for _, k := range p {
		buf.WriteString(k.String())
	}
	return buf.String()
}

// Child appends a key, sharing no state with p.
func (p Path) Child(k Key) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, k)
}
