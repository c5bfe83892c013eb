package jsonrepair

// skipWhitespaceAndComments advances c past any run of JSON whitespace,
// `//` and `#` line comments, and `/* */` block comments (SPEC_FULL.md §4.2).
// An unterminated block comment consumes the rest of the input rather than
// erroring, consistent with this engine's never-fail posture.
func skipWhitespaceAndComments(c *cursor) {
	for {
		r, ok := c.current()
		if !ok {
			return
		}
		switch {
		case isJSONWhitespace(r):
			c.advance()
		case r == '/' && peekIs(c, 1, '/'):
			skipLineComment(c)
		case r == '#':
			skipLineComment(c)
		case r == '/' && peekIs(c, 1, '*'):
			skipBlockComment(c)
		default:
			return
		}
	}
}

func peekIs(c *cursor, offset int, want rune) bool {
	r, ok := c.peek(offset)
	return ok && r == want
}

func skipLineComment(c *cursor) {
	for {
		r, ok := c.current()
		if !ok || r == '\n' {
			return
		}
		c.advance()
	}
}

func skipBlockComment(c *cursor) {
	c.advanceN(2) // consume "/*"
	for {
		r, ok := c.current()
		if !ok {
			return
		}
		if r == '*' && peekIs(c, 1, '/') {
			c.advanceN(2)
			return
		}
		c.advance()
	}
}

func isJSONWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
