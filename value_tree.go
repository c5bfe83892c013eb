package jsonrepair

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the JSON type held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is the parsed value tree (SPEC_FULL.md §3.1): a navigable,
// order-preserving representation of a repaired document, as an
// alternative to working with the re-serialized text directly.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	arr  []Value
	obj  *Object
}

// Object is an order-preserving map of a JSON object's members: it
// remembers the sequence keys were first seen in, the way an LLM's
// response ordered them, rather than an unordered Go map.
type Object struct {
	keys []string
	vals map[string]Value
}

// Keys returns the object's member names in encounter order.
func (o *Object) Keys() []string { return o.keys }

// Get returns the value for key and whether it was present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.vals[key]
	return v, ok
}

// Len returns the number of members in the object.
func (o *Object) Len() int { return len(o.keys) }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Num returns the value's underlying json.Number, valid only if Kind is
// KindNumber. Use its Float64 or Int64 methods to convert.
func (v Value) Num() (json.Number, bool) {
	return v.n, v.kind == KindNumber
}

// Str returns the value's underlying string, valid only if Kind is
// KindString. It is distinct from String, which renders any Value
// (including strings) back to JSON text.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

func (v Value) Array() ([]Value, bool) {
	return v.arr, v.kind == KindArray
}

func (v Value) Object() (*Object, bool) {
	return v.obj, v.kind == KindObject
}

// String renders v as compact canonical JSON text.
func (v Value) String() string {
	var b strings.Builder
	v.writeTo(&b, -1, 0)
	return b.String()
}

// PrettyString renders v as indented JSON text, indent spaces per level.
func (v Value) PrettyString(indent int) string {
	var b strings.Builder
	v.writeTo(&b, indent, 0)
	return b.String()
}

func (v Value) writeTo(b *strings.Builder, indent, depth int) {
	pretty := indent >= 0

	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindNumber:
		b.WriteString(strings.ReplaceAll(v.n.String(), "E", "e"))
	case KindString:
		appendQuotedString(b, v.s, false)
	case KindArray:
		b.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			writeIndent(b, pretty, indent, depth+1)
			e.writeTo(b, indent, depth+1)
		}
		if pretty && len(v.arr) > 0 {
			writeIndent(b, pretty, indent, depth)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, k := range v.obj.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeIndent(b, pretty, indent, depth+1)
			appendQuotedString(b, k, false)
			b.WriteByte(':')
			if pretty {
				b.WriteByte(' ')
			}
			v.obj.vals[k].writeTo(b, indent, depth+1)
		}
		if pretty && len(v.obj.keys) > 0 {
			writeIndent(b, pretty, indent, depth)
		}
		b.WriteByte('}')
	}
}

func writeIndent(b *strings.Builder, pretty bool, indent, depth int) {
	if !pretty {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", indent*depth))
}

// unmarshalValue decodes data (assumed to already be strictly valid JSON)
// into a Value tree, preserving object key order.
func unmarshalValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, unrepairablef("decoding repaired output: %s", err)
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %v", t)
	case bool:
		return Value{kind: KindBool, b: t}, nil
	case json.Number:
		return Value{kind: KindNumber, n: t}, nil
	case string:
		return Value{kind: KindString, s: t}, nil
	case nil:
		return Value{kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var arr []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return Value{}, err
	}
	return Value{kind: KindArray, arr: arr}, nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := &Object{vals: make(map[string]Value)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, _ := keyTok.(string)
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		if _, exists := obj.vals[key]; !exists {
			obj.keys = append(obj.keys, key)
		}
		obj.vals[key] = v
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return Value{}, err
	}
	return Value{kind: KindObject, obj: obj}, nil
}
