package jsonrepair

// parseObject is the Object Sub-parser (SPEC_FULL.md §4.7, §9). It buffers
// each "key":value member as a fully-rendered fragment rather than writing
// members straight through, so that when the same key is seen twice while
// this object is itself an array element, the already-buffered members can
// be flushed as one complete object and a fresh one started for the
// remainder — splitting `[{"a":1,"a":2}]` into `[{"a":1},{"a":2}]` instead
// of emitting a single object with a duplicate key. Outside of an array
// (the object is the root value, or another object's value) there is no
// sibling array to split into, so a duplicate key instead falls back to
// ordinary last-value-wins overwriting. A foreign closer (']', from a
// mismatched bracket) auto-closes this object without being consumed,
// the same auto-close posture as running out of input, so an enclosing
// array can still terminate on it and the parser always makes forward
// progress (SPEC_FULL.md §5, §7). Grounded on
// original_source/src/lib.rs's parse_object, which gates the same split on
// the enclosing context being ContextValues::Array; this buffered-flush
// approach replaces its rollback_index + string-splice technique, which has
// no equivalent once output is append-only.
func (p *parser) parseObject() error {
	p.cur.advance() // consume '{'
	inArray := p.ctx.inArray()

	var members []string
	seen := make(map[string]int) // key -> index into members

	flush := func() {
		p.out.writeByte('{')
		for i, m := range members {
			if i > 0 {
				p.out.writeByte(',')
			}
			p.out.writeString(m)
		}
		p.out.writeByte('}')
	}

	for {
		skipWhitespaceAndComments(p.cur)
		r, ok := p.cur.current()
		if !ok {
			break
		}
		if r == '}' {
			p.cur.advance()
			break
		}
		if r == ']' {
			// A foreign closer: this object never got its own '}', so
			// auto-close here without consuming it, leaving it for an
			// enclosing array to terminate on (or, at the root, simply
			// left over). Consuming nothing here but also not advancing
			// would spin forever re-seeing the same character.
			break
		}
		if r == ',' || r == ':' {
			// Doubled commas and a stray colon where a key belongs are
			// both skipped.
			p.cur.advance()
			continue
		}

		savedOut := p.out
		keyBuf := newEmitter(savedOut.ensureASCII)
		p.out = keyBuf
		p.ctx.push(contextObjectKey)
		key, err := p.parseKeyString()
		p.ctx.pop()
		p.out = savedOut
		if err != nil {
			return err
		}

		skipWhitespaceAndComments(p.cur)
		if r2, ok2 := p.cur.current(); ok2 && r2 == ':' {
			p.cur.advance()
		}
		skipWhitespaceAndComments(p.cur)

		valBuf := newEmitter(savedOut.ensureASCII)
		p.out = valBuf
		p.ctx.push(contextObjectValue)
		if err := p.checkDepth(); err != nil {
			p.ctx.pop()
			p.out = savedOut
			return err
		}
		if r3, ok3 := p.cur.current(); !ok3 || r3 == ',' || r3 == '}' {
			valBuf.writeString("null")
		} else if err := p.parseValue(); err != nil {
			p.ctx.pop()
			p.out = savedOut
			return err
		}
		p.ctx.pop()
		p.out = savedOut

		member := keyBuf.String() + ":" + valBuf.String()
		if idx, dup := seen[key]; dup {
			if inArray {
				flush()
				p.out.writeByte(',')
				members = nil
				seen = make(map[string]int)
				seen[key] = 0
				members = append(members, member)
			} else {
				members[idx] = member
			}
			continue
		}
		seen[key] = len(members)
		members = append(members, member)
	}

	flush()
	return nil
}
