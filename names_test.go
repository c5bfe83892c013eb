package jsonrepair

import (
	"reflect"
	"testing"
)

func TestNormalizeNames(t *testing.T) {
	type Person struct {
		FirstName string `json:"firstName"`
		Age       int    `json:"age"`
	}

	names := NewNames(reflect.TypeOf(Person{}))

	v, err := Parse(`{"FIRSTNAME":"Ada","Age":36}`, Options{})
	if err != nil {
		t.Fatal(err)
	}

	normalized := v.NormalizeNames(names)
	obj, ok := normalized.Object()
	if !ok {
		t.Fatalf("expected an object, got kind %v", normalized.Kind())
	}
	if _, ok := obj.Get("firstName"); !ok {
		t.Errorf("expected a canonical firstName member, got keys %v", obj.Keys())
	}
	if _, ok := obj.Get("age"); !ok {
		t.Errorf("expected a canonical age member, got keys %v", obj.Keys())
	}
}

func TestNormalizeNamesWildcardMap(t *testing.T) {
	type Row struct {
		Value string `json:"value"`
	}
	names := NewNames(reflect.TypeOf(map[string]Row{}))

	v, err := Parse(`{"row1":{"VALUE":"x"},"row2":{"Value":"y"}}`, Options{})
	if err != nil {
		t.Fatal(err)
	}
	normalized := v.NormalizeNames(names)
	obj, _ := normalized.Object()
	for _, key := range obj.Keys() {
		row, _ := obj.Get(key)
		rowObj, ok := row.Object()
		if !ok {
			t.Fatalf("expected %s to be an object", key)
		}
		if _, ok := rowObj.Get("value"); !ok {
			t.Errorf("expected %s to have a canonical value member, got %v", key, rowObj.Keys())
		}
	}
}
