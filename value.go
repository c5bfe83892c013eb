package jsonrepair

// parseValue is the Value Dispatcher (SPEC_FULL.md §4.3): it skips leading
// whitespace and comments, then routes to the sub-parser matching the
// current character, or emits "null" at end of input — the generic rule
// for a value position (object value, array element) left empty by the
// input. Object keys never reach this dispatcher; they are always forced
// through parseKeyString, which is how the Context Stack's
// ObjectKey/ObjectValue distinction actually manifests: literal promotion
// (bare true/false/null becoming the JSON literal rather than a string)
// only ever happens here, never while parsing a key.
func (p *parser) parseValue() error {
	skipWhitespaceAndComments(p.cur)
	if err := p.checkDepth(); err != nil {
		return err
	}

	r, ok := p.cur.current()
	if !ok {
		p.out.writeString("null")
		return nil
	}

	switch {
	case r == '{':
		return p.parseObject()
	case r == '[':
		return p.parseArray()
	case isQuoteChar(r):
		_, err := p.parseQuotedString()
		return err
	case r == '-' || isASCIIDigit(r):
		return p.parseNumber()
	default:
		return p.parseLiteralOrBareString()
	}
}
