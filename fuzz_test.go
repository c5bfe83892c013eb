// Copyright (c) 2023 Tailscale Inc & AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build dev.fuzz
// +build dev.fuzz

package jsonrepair

import (
	"encoding/json"
	"errors"
	"testing"
)

func FuzzRepair(f *testing.F) {
	seeds := []string{
		`{"a":1}`,
		`{name: 'John', age: 30}`,
		`[1, 2, 3,]`,
		`{"a":1,"a":2}`,
		`[{"a":1,"a":2}]`,
		"```json\n{\"x\":1}\n```",
		`Here's the JSON: {"x":1}`,
		``,
		`foo`,
		`{"a":`,
		`{"a":1]`,
		`[1}`,
		`{]`,
		`[}`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		if len(s) > 1<<12 {
			t.Skip("input too large")
		}

		out, err := Repair(s, Options{})
		if err != nil {
			// Only the documented failure modes are acceptable; anything
			// else is a bug in the engine.
			if errors.Is(err, ErrEncoding) || errors.Is(err, ErrNestingLimitExceeded) {
				t.Skipf("input %q: Repair error: %v", s, err)
			}
			t.Fatalf("input %q: unexpected Repair error: %v", s, err)
		}

		if !json.Valid([]byte(out)) {
			t.Fatalf("input %q: Repair produced invalid JSON: %q", s, out)
		}

		// Repairing already-repaired output must be a no-op (idempotence).
		out2, err := Repair(out, Options{})
		if err != nil {
			t.Fatalf("input %q: repairing repaired output errored: %v", s, err)
		}
		if out != out2 {
			t.Fatalf("input %q: Repair is not idempotent: %q != %q", s, out, out2)
		}
	})
}
