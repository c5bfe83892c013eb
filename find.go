package jsonrepair

import (
	"strconv"
	"strings"
)

// Find navigates v using an RFC 6901 JSON Pointer, such as "/a/b/0", and
// returns the value found there. An empty pointer returns v itself.
func (v Value) Find(pointer string) (Value, bool) {
	if pointer == "" {
		return v, true
	}
	if pointer[0] != '/' {
		return Value{}, false
	}

	cur := v
	for _, tok := range strings.Split(pointer[1:], "/") {
		tok = unescapePointerToken(tok)
		switch cur.kind {
		case KindObject:
			next, ok := cur.obj.Get(tok)
			if !ok {
				return Value{}, false
			}
			cur = next
		case KindArray:
			idx, err := strconv.Atoi(tok)
			if err != nil || idx < 0 || idx >= len(cur.arr) {
				return Value{}, false
			}
			cur = cur.arr[idx]
		default:
			return Value{}, false
		}
	}
	return cur, true
}

// unescapePointerToken decodes the "~1" and "~0" escapes RFC 6901 uses for
// literal "/" and "~" inside a reference token.
func unescapePointerToken(tok string) string {
	if !strings.Contains(tok, "~") {
		return tok
	}
	tok = strings.ReplaceAll(tok, "~1", "/")
	tok = strings.ReplaceAll(tok, "~0", "~")
	return tok
}
