package jsonrepair

import "iter"

// All walks v and every descendant depth-first, pre-order: v itself, then
// each child (recursively) in encounter order — an object's members in the
// order first seen, an array's elements by index. It is the Go 1.23
// range-over-func rewrite of the teacher's own Value.All, whose TestAll
// walks a whole tree the same way; this tree has no Value-typed key nodes
// to also yield, so only the values themselves appear.
func (v Value) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		v.walk(yield)
	}
}

// walk yields v and its descendants depth-first, pre-order, stopping as
// soon as yield reports it is done.
func (v Value) walk(yield func(Value) bool) bool {
	if !yield(v) {
		return false
	}
	switch v.kind {
	case KindObject:
		for _, k := range v.obj.keys {
			if !v.obj.vals[k].walk(yield) {
				return false
			}
		}
	case KindArray:
		for _, e := range v.arr {
			if !e.walk(yield) {
				return false
			}
		}
	}
	return true
}
