package jsonrepair

import (
	"bytes"
	"strings"
	"testing"
)

func TestDecoderRepairsMalformedInput(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}
	dec := NewDecoder(strings.NewReader(`{name: 'Ada', age: 36,}`), Options{})
	if err := dec.Decode(&dst); err != nil {
		t.Fatal(err)
	}
	if dst.Name != "Ada" || dst.Age != 36 {
		t.Errorf("got %+v, want Name=Ada Age=36", dst)
	}
}

func TestEncoderIndents(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, Options{Indent: 2})
	if err := enc.Encode(map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": 1\n}\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
