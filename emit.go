package jsonrepair

import (
	"strings"
)

// emitter is the append-only output buffer described in SPEC_FULL.md §4.9.
// It never needs to re-scan or un-write what it has already produced: every
// sub-parser either fully commits a token or refuses to write anything at
// all, so a plain strings.Builder is sufficient.
type emitter struct {
	buf         strings.Builder
	ensureASCII bool
}

func newEmitter(ensureASCII bool) *emitter {
	return &emitter{ensureASCII: ensureASCII}
}

func (e *emitter) writeByte(b byte) {
	e.buf.WriteByte(b)
}

func (e *emitter) writeString(s string) {
	e.buf.WriteString(s)
}

func (e *emitter) String() string {
	return e.buf.String()
}

// writeUnicodeEscape writes r as one or two \uXXXX escapes, using a UTF-16
// surrogate pair for code points at or beyond U+10000 (SPEC_FULL.md §3, §4.4).
func writeUnicodeEscape(b *strings.Builder, r rune) {
	if r > 0xFFFF {
		r -= 0x10000
		hi := 0xD800 + (r >> 10)
		lo := 0xDC00 + (r & 0x3FF)
		writeHex4(b, rune(hi))
		writeHex4(b, rune(lo))
		return
	}
	writeHex4(b, r)
}

const hexDigits = "0123456789abcdef"

func writeHex4(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(hexDigits[(r>>12)&0xF])
	b.WriteByte(hexDigits[(r>>8)&0xF])
	b.WriteByte(hexDigits[(r>>4)&0xF])
	b.WriteByte(hexDigits[r&0xF])
}

// appendQuotedString writes s to b as a canonical, fully-escaped JSON
// string literal, honouring ensureASCII the same way the parser's own
// writeQuotedString does. Shared by the parser (which writes through an
// emitter) and the Value tree's own String/PrettyString rendering (which
// writes directly to a strings.Builder and has no emitter of its own).
func appendQuotedString(b *strings.Builder, s string, ensureASCII bool) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				writeHex4(b, r)
			} else if ensureASCII && r > 0x7F {
				writeUnicodeEscape(b, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
