package jsonrepair

// maxNestingDepth bounds the context stack so a pathologically deep input
// fails fast with ErrNestingLimitExceeded instead of growing the Go stack
// without bound (SPEC_FULL.md §5).
const maxNestingDepth = 1024

// parser is the top-level glue struct (SPEC_FULL.md §4): it owns the
// Character Cursor, the Context Stack, and the Output Emitter, and
// orchestrates the sub-parsers through parseValue.
type parser struct {
	cur *cursor
	ctx *contextStack
	out *emitter
}

func newParser(text string, opts Options) *parser {
	runes := stripPreamble([]rune(text))
	return &parser{
		cur: newCursor(runes),
		ctx: newContextStack(),
		out: newEmitter(opts.EnsureASCII),
	}
}

func (p *parser) checkDepth() error {
	if p.ctx.depth() >= maxNestingDepth {
		return nestingLimitErrorf(p.ctx.depth())
	}
	return nil
}

// run executes the repair engine over the parser's input and returns the
// canonical JSON text it produced. An empty or whitespace/comment-only
// input is the one place the engine departs from the generic Value
// Dispatcher's end-of-input rule (which emits null for a missing nested
// value): at the top level it instead produces "{}", the more useful
// default for a prompt that yielded no content at all.
func (p *parser) run() (string, error) {
	skipWhitespaceAndComments(p.cur)
	if p.cur.atEnd() {
		p.out.writeString("{}")
		return p.out.String(), nil
	}
	if err := p.parseValue(); err != nil {
		return "", err
	}
	return p.out.String(), nil
}
