package jsonrepair

import "testing"

func TestValuePrettyString(t *testing.T) {
	v, err := Parse(`{"a":1,"b":[1,2]}`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1,\n  \"b\": [\n    1,\n    2\n  ]\n}"
	if got := v.PrettyString(2); got != want {
		t.Errorf("PrettyString(2) = %q, want %q", got, want)
	}
}

func TestValueStringCompact(t *testing.T) {
	v, err := Parse(`{"a": 1, "b": [1, 2]}`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"b":[1,2]}`
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestValueKindAccessors(t *testing.T) {
	v, err := Parse(`null`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !v.IsNull() {
		t.Error("IsNull() = false for null value")
	}

	v, err = Parse(`true`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if b, ok := v.Bool(); !ok || !b {
		t.Errorf("Bool() = %v, %v, want true, true", b, ok)
	}
}
