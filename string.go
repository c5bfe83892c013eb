package jsonrepair

// isQuoteChar reports whether r is one of the delimiters this engine
// accepts as opening (or closing) a string literal: the canonical ASCII
// double quote, a single quote, and the typographic double-quote pair,
// all of which LLM output uses interchangeably (SPEC_FULL.md §4.4).
func isQuoteChar(r rune) bool {
	switch r {
	case '"', '\'', '“', '”':
		return true
	}
	return false
}

// closingQuoteRune returns the delimiter that terminates a string opened
// with open. The typographic quotes are paired with each other; every
// other delimiter is symmetric.
func closingQuoteRune(open rune) rune {
	switch open {
	case '“':
		return '”'
	case '”':
		return '“'
	default:
		return open
	}
}

// parseQuotedString consumes a delimited string literal starting at the
// cursor, writes its canonical escaped form to the current output target,
// and returns the decoded value (used by the object sub-parser for
// duplicate-key comparison). It tolerates a doubled closing delimiter as an
// escaped quote and an unterminated literal by stopping at end of input, or
// at a bare newline that looks like it introduces the next "key": pair —
// the common shape of an LLM response that dropped a closing quote.
func (p *parser) parseQuotedString() (string, error) {
	open, _ := p.cur.current()
	close := closingQuoteRune(open)
	p.cur.advance()

	var val []rune
	for {
		r, ok := p.cur.current()
		if !ok {
			break
		}
		if r == '\\' {
			val = append(val, decodeEscapeSeq(p.cur))
			continue
		}
		if r == close {
			if r2, ok2 := p.cur.peek(1); ok2 && r2 == close {
				val = append(val, close)
				p.cur.advanceN(2)
				continue
			}
			p.cur.advance()
			break
		}
		if r == '\n' && looksLikeNextKey(p.cur) {
			break
		}
		val = append(val, r)
		p.cur.advance()
	}

	s := string(val)
	p.writeQuotedString(s)
	return s, nil
}

// looksLikeNextKey reports whether, skipping whitespace ahead of the
// cursor without consuming it, the next non-whitespace character opens a
// new string literal — the heuristic used to decide that an unterminated
// string actually ended at the preceding newline.
func looksLikeNextKey(c *cursor) bool {
	i := c.idx
	for i < len(c.runes) && isJSONWhitespace(c.runes[i]) {
		i++
	}
	if i >= len(c.runes) {
		return false
	}
	return isQuoteChar(c.runes[i])
}

// decodeEscapeSeq decodes the escape sequence starting at the cursor's
// current backslash and advances past it, returning the rune it denotes.
// Unrecognized escapes are treated leniently as their literal character.
func decodeEscapeSeq(c *cursor) rune {
	esc, ok := c.peek(1)
	if !ok {
		c.advance()
		return '\\'
	}
	switch esc {
	case '"', '\'', '\\', '/':
		c.advanceN(2)
		return esc
	case 'b':
		c.advanceN(2)
		return '\b'
	case 'f':
		c.advanceN(2)
		return '\f'
	case 'n':
		c.advanceN(2)
		return '\n'
	case 'r':
		c.advanceN(2)
		return '\r'
	case 't':
		c.advanceN(2)
		return '\t'
	case 'u':
		if r, ok := decodeUnicodeEscape(c); ok {
			return r
		}
		c.advanceN(2)
		return 'u'
	default:
		c.advanceN(2)
		return esc
	}
}

// decodeUnicodeEscape decodes the four hex digits following a \u escape
// (the cursor positioned at the backslash), advancing past all six
// characters on success.
func decodeUnicodeEscape(c *cursor) (rune, bool) {
	var v rune
	for i := 0; i < 4; i++ {
		r, ok := c.peek(2 + i)
		if !ok {
			return 0, false
		}
		d, ok := hexDigitValue(r)
		if !ok {
			return 0, false
		}
		v = v<<4 | rune(d)
	}
	c.advanceN(6)
	return v, true
}

func hexDigitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// parseKeyString forces the next token to be read as an object key,
// regardless of whether it is quoted: an unquoted key is always a string,
// never a promoted literal, which is the one place this engine's
// context-sensitivity actually changes parsing behavior.
func (p *parser) parseKeyString() (string, error) {
	r, ok := p.cur.current()
	if ok && isQuoteChar(r) {
		return p.parseQuotedString()
	}
	tok := p.parseBareKeyToken()
	p.writeQuotedString(tok)
	return tok, nil
}

// parseBareKeyToken consumes an unquoted object key up to the first
// whitespace, colon, comma, or closing bracket.
func (p *parser) parseBareKeyToken() string {
	var val []rune
	for {
		r, ok := p.cur.current()
		if !ok {
			break
		}
		if isJSONWhitespace(r) || r == ':' || r == ',' || r == '}' || r == ']' {
			break
		}
		val = append(val, r)
		p.cur.advance()
	}
	return string(val)
}

// parseBareValueToken consumes an unquoted value up to the next comma,
// closing bracket, or newline, trimming surrounding horizontal whitespace.
// Unlike a key, a bare value may contain internal spaces — LLM output
// frequently leaves multi-word strings unquoted.
func (p *parser) parseBareValueToken() string {
	var val []rune
	for {
		r, ok := p.cur.current()
		if !ok {
			break
		}
		if r == ',' || r == '}' || r == ']' || r == '\n' {
			break
		}
		val = append(val, r)
		p.cur.advance()
	}
	s := string(val)
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

// writeQuotedString writes s to the current output target as a canonical,
// fully-escaped JSON string literal, honouring ensure_ascii (SPEC_FULL.md
// §3, §4.4, §4.9).
func (p *parser) writeQuotedString(s string) {
	appendQuotedString(&p.out.buf, s, p.out.ensureASCII)
}
