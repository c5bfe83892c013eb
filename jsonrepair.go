// Copyright (c) 2023 Tailscale Inc & AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonrepair repairs malformed or LLM-produced JSON-like text into
// strictly valid, canonically re-serialized JSON.
//
// Repair always re-serializes: it never preserves the original formatting
// or whitespace of the input, though object key order is preserved in
// encounter order. Parse goes one step further and returns a navigable
// Value tree instead of text.
package jsonrepair

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"unicode/utf8"
)

// Options configures a single Repair, Parse, or ParseFile call.
type Options struct {
	// SkipValidation skips the final strict re-parse of the engine's own
	// output. Set it to trade a correctness guarantee for speed on input
	// that is already known to be well-formed JSON plus minor damage.
	SkipValidation bool

	// EnsureASCII escapes every non-ASCII rune in string literals as a
	// \uXXXX sequence (using a UTF-16 surrogate pair above U+FFFF) instead
	// of writing it literally.
	EnsureASCII bool

	// Indent is the number of spaces per level Encoder uses to pretty-print
	// its output. Repair's own output is always compact; Indent has no
	// effect on it.
	Indent int

	// StreamStable is accepted for parity with the CLI of the tool this
	// engine's repair strategy is descended from, where it governed
	// streaming-input repair; this package only ever repairs one
	// fully-read document, so it currently has no effect.
	StreamStable bool
}

// Repair parses text as malformed JSON-like text and returns the
// canonical, strictly valid JSON it repairs to. It never returns a parse
// error for the input itself — only ErrEncoding for input that is not
// valid UTF-8, ErrNestingLimitExceeded for pathologically deep input, or
// ErrUnrepairable if, after all this, its own output still fails to
// strictly parse.
func Repair(text string, opts Options) (string, error) {
	if !utf8.ValidString(text) {
		return "", encodingErrorf("input is not valid UTF-8")
	}

	if out, ok := tryFastPaths(text); ok {
		// Re-serialize through the Value tree so a fast-path result is as
		// canonical as the engine's, then honour EnsureASCII.
		v, err := unmarshalValue([]byte(out))
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, r := range v.String() {
			if opts.EnsureASCII && r > 0x7F {
				writeUnicodeEscape(&b, r)
			} else {
				b.WriteRune(r)
			}
		}
		return b.String(), nil
	}

	p := newParser(text, opts)
	out, err := p.run()
	if err != nil {
		return "", err
	}

	if !opts.SkipValidation {
		if !json.Valid([]byte(out)) {
			return "", unrepairablef("output %q did not pass strict validation", out)
		}
	}
	return out, nil
}

// tryFastPaths attempts the two cheap paths ahead of the full repair
// engine (SPEC_FULL.md §4.2.1): a strict parse of the input as-is, and a
// single-pass comment/trailing-comma elision followed by a strict parse.
// Either succeeding avoids running the full context-stack engine at all.
func tryFastPaths(text string) (string, bool) {
	if json.Valid([]byte(text)) {
		return text, true
	}
	stripped := stripCommentsAndTrailingCommas(text)
	if stripped != text && json.Valid([]byte(stripped)) {
		return stripped, true
	}
	return "", false
}

// Parse repairs text and returns the result as a navigable Value tree.
func Parse(text string, opts Options) (Value, error) {
	repaired, err := Repair(text, opts)
	if err != nil {
		return Value{}, err
	}
	return unmarshalValue([]byte(repaired))
}

// ParseFile reads path, repairs its contents, and returns the result as a
// Value tree. ctx is honored only in that a canceled context aborts before
// the file is read.
func ParseFile(ctx context.Context, path string, opts Options) (Value, error) {
	select {
	case <-ctx.Done():
		return Value{}, ctx.Err()
	default:
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, ioErrorf("%s", err)
	}
	return Parse(string(data), opts)
}
