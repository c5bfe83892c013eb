package jsonrepair

import "testing"

func TestValueAllWalksWholeTreeDepthFirst(t *testing.T) {
	v, err := Parse(`["fizz", {"key": ["value", {"foo": "bar"}]}, [1,2,3], "buzz"]`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for v2 := range v.All() {
		got = append(got, v2.String())
	}
	want := []string{
		`["fizz",{"key":["value",{"foo":"bar"}]},[1,2,3],"buzz"]`,
		`"fizz"`,
		`{"key":["value",{"foo":"bar"}]}`,
		`["value",{"foo":"bar"}]`,
		`"value"`,
		`{"foo":"bar"}`,
		`"bar"`,
		`[1,2,3]`,
		`1`,
		`2`,
		`3`,
		`"buzz"`,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d nodes, want %d:\ngot:  %v\nwant: %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("node %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValueAllArraySumsDescendantNumbers(t *testing.T) {
	v, err := Parse(`[10,20,30]`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var sum int64
	for e := range v.All() {
		if n, ok := e.Num(); ok {
			i, _ := n.Int64()
			sum += i
		}
	}
	if sum != 60 {
		t.Errorf("sum = %d, want 60", sum)
	}
}

func TestValueAllStopsEarly(t *testing.T) {
	v, err := Parse(`[1,2,3,4,5]`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	for range v.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
