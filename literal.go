package jsonrepair

import "strings"

// parseLiteralOrBareString is the Literal Sub-parser (SPEC_FULL.md §4.6).
// It is only ever reached from a value position (parseValue), never from
// a key: that asymmetry is what lets an unquoted true/false/null be
// promoted to the JSON literal here while the same token, seen as a key,
// is always forced to a string by parseKeyString instead.
func (p *parser) parseLiteralOrBareString() error {
	tok := p.parseBareValueToken()
	switch strings.ToLower(tok) {
	case "true":
		p.out.writeString("true")
	case "false":
		p.out.writeString("false")
	case "null", "none", "undefined", "":
		p.out.writeString("null")
	default:
		p.writeQuotedString(tok)
	}
	return nil
}
