package jsonrepair

// cursor is an indexable view over the input as a sequence of Unicode scalar
// values (runes), with current-position, peek-at-offset, and advance
// primitives. It never copies the underlying slice; advancing only moves idx.
type cursor struct {
	runes []rune
	idx   int
}

func newCursor(runes []rune) *cursor {
	return &cursor{runes: runes}
}

// current returns the rune at the cursor position, or false if the cursor is
// at or past the end of input.
func (c *cursor) current() (rune, bool) {
	return c.peek(0)
}

// peek returns the rune offset positions ahead of the cursor, or false if
// that position is at or past the end of input. peek(0) is equivalent to
// current().
func (c *cursor) peek(offset int) (rune, bool) {
	i := c.idx + offset
	if i < 0 || i >= len(c.runes) {
		return 0, false
	}
	return c.runes[i], true
}

// advance moves the cursor forward by one rune.
func (c *cursor) advance() {
	c.idx++
}

// advanceN moves the cursor forward by n runes.
func (c *cursor) advanceN(n int) {
	c.idx += n
}

// atEnd reports whether the cursor has consumed the entire input.
func (c *cursor) atEnd() bool {
	return c.idx >= len(c.runes)
}

// remaining returns the number of runes not yet consumed.
func (c *cursor) remaining() int {
	if c.idx >= len(c.runes) {
		return 0
	}
	return len(c.runes) - c.idx
}

// hasPrefix reports whether the unconsumed input starts with s.
func (c *cursor) hasPrefix(s string) bool {
	rs := []rune(s)
	if c.remaining() < len(rs) {
		return false
	}
	for i, r := range rs {
		if c.runes[c.idx+i] != r {
			return false
		}
	}
	return true
}
