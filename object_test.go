package jsonrepair

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDuplicateKeySplitting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "two duplicate keys split into two objects",
			in:   `[{"a":1,"a":2}]`,
			want: `[{"a":1},{"a":2}]`,
		},
		{
			name: "three occurrences split into three objects",
			in:   `[{"a":1,"a":2,"a":3}]`,
			want: `[{"a":1},{"a":2},{"a":3}]`,
		},
		{
			name: "a distinct key after the duplicate stays with the new object",
			in:   `[{"a":1,"b":2,"a":3,"c":4}]`,
			want: `[{"a":1,"b":2},{"a":3,"c":4}]`,
		},
		{
			name: "non-duplicated sibling objects are left alone",
			in:   `[{"a":1},{"a":2}]`,
			want: `[{"a":1},{"a":2}]`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Repair(tc.in, Options{})
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Repair(%q) mismatch (-want +got):\n%s", tc.in, diff)
			}
		})
	}
}
