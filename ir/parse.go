package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePath parses a "$"-rooted path expression into a Path.  Fields follow
// '.' and may be single-quoted with backslash escapes; indices are decimal
// and bracketed.  "$" alone is the empty path.  Parsing is deterministic and
// has no side effects; every error wraps ErrPathSyntax.
func ParsePath(p string) (Path, error) {
	if len(p) == 0 || p[0] != '$' {
		return nil, fmt.Errorf("%w: path %q should start with '$'", ErrPathSyntax, p)
	}
	var res Path
	frag := p[1:]
	for len(frag) > 0 {
		switch frag[0] {
		case '.':
			if len(frag) > 1 && frag[1] == '.' {
				return nil, fmt.Errorf("%w: recursive descent '..' not supported", ErrPathSyntax)
			}
			field, rest, err := parseField(frag[1:])
			if err != nil {
				return nil, err
			}
			res = append(res, FieldKey(field))
			frag = rest
		case '[':
			i := strings.IndexByte(frag[1:], ']')
			if i == -1 {
				return nil, fmt.Errorf("%w: expected '[' <index> ']'", ErrPathSyntax)
			}
			index, err := parseIndex(frag[1 : i+1])
			if err != nil {
				return nil, err
			}
			res = append(res, IndexKey(index))
			frag = frag[i+2:]
		default:
			return nil, fmt.Errorf("%w: expected '.' or '[' at %q", ErrPathSyntax, frag)
		}
	}
	return res, nil
}

func parseIndex(is string) (int, error) {
	if is == "*" {
		return 0, fmt.Errorf("%w: index wildcard '[*]' not supported", ErrPathSyntax)
	}
	u64, err := strconv.ParseUint(is, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrPathSyntax, is)
	}
	return int(u64), nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("%w: expected field at end of string", ErrPathSyntax)
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		if escaped {
			escaped = false
			res = append(res, c)
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '\'':
			return string(res), frag[i+1:], nil
		default:
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("%w: end of string scanning for \"'\"", ErrPathSyntax)
}
