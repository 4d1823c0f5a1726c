// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

package decode

import (
	"encoding/json"
	"reflect"
	"testing"
)

type pair struct {
	Name *string
}

func decodePair(obj Object) *pair {
	if len(obj) == 0 {
		return nil
	}
	return &pair{Name: String(obj, "name")}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace", input: " \n\t", wantOK: false},
		{name: "malformed", input: `{"id":`, wantOK: false},
		{name: "object", input: `{"id": 1}`, wantOK: true},
		{name: "array", input: `[1, 2]`, wantOK: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Parse([]byte(tc.input))
			if ok != tc.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
		})
	}
}

func TestParse_KeepsLargeIntegers(t *testing.T) {
	v, ok := Parse([]byte(`{"id": 9007199254740993}`))
	if !ok {
		t.Fatal("Parse failed")
	}
	id := Int(AsObject(v), "id")
	if id == nil || *id != 9007199254740993 {
		t.Errorf("id = %v, want 9007199254740993", id)
	}
}

func TestScalarReaders(t *testing.T) {
	obj := Object{
		"s":     "text",
		"b":     true,
		"n":     json.Number("42"),
		"f":     json.Number("1.5"),
		"whole": float64(7),
		"frac":  float64(7.25),
		"null":  nil,
	}

	if got := String(obj, "s"); got == nil || *got != "text" {
		t.Errorf("String = %v, want text", got)
	}
	if got := Bool(obj, "b"); got == nil || !*got {
		t.Errorf("Bool = %v, want true", got)
	}
	if got := Int(obj, "n"); got == nil || *got != 42 {
		t.Errorf("Int(n) = %v, want 42", got)
	}
	if got := Int(obj, "whole"); got == nil || *got != 7 {
		t.Errorf("Int(whole) = %v, want 7", got)
	}
	if got := Int(obj, "frac"); got != nil {
		t.Errorf("Int(frac) = %v, want nil", *got)
	}
	if got := Float(obj, "f"); got == nil || *got != 1.5 {
		t.Errorf("Float = %v, want 1.5", got)
	}
}

func TestScalarReaders_AbsentAndMismatched(t *testing.T) {
	obj := Object{
		"s":        json.Number("1"),
		"n":        "one",
		"null":     nil,
		"huge":     float64(1 << 63),
		"hugeneg":  float64(-(1 << 63)) * 2,
		"hugejson": json.Number("9223372036854775808"),
	}

	if got := String(obj, "s"); got != nil {
		t.Errorf("String on number = %q, want nil", *got)
	}
	if got := Int(obj, "n"); got != nil {
		t.Errorf("Int on string = %d, want nil", *got)
	}
	if got := Bool(obj, "null"); got != nil {
		t.Errorf("Bool on null = %v, want nil", *got)
	}
	for _, key := range []string{"huge", "hugeneg", "hugejson"} {
		if got := Int(obj, key); got != nil {
			t.Errorf("Int(%s) = %d, want nil for out of range", key, *got)
		}
	}
	if got := String(obj, "missing"); got != nil {
		t.Errorf("String on missing = %q, want nil", *got)
	}
	if got := String(nil, "missing"); got != nil {
		t.Errorf("String on nil object = %q, want nil", *got)
	}
}

func TestListReaders(t *testing.T) {
	obj := Object{
		"tags":    []any{"a", json.Number("1"), "b"},
		"indices": []any{json.Number("3"), "x", float64(9)},
		"native":  []string{"c"},
	}

	if got, want := Strings(obj, "tags"), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Strings = %v, want %v", got, want)
	}
	if got, want := Strings(obj, "native"), []string{"c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Strings(native) = %v, want %v", got, want)
	}
	if got, want := Ints(obj, "indices"), []int64{3, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("Ints = %v, want %v", got, want)
	}
	if got := Strings(obj, "missing"); got != nil {
		t.Errorf("Strings(missing) = %v, want nil", got)
	}
}

func TestOne(t *testing.T) {
	if got := One(nil, decodePair); got != nil {
		t.Errorf("One(nil) = %+v, want nil", got)
	}
	if got := One(Object{}, decodePair); got != nil {
		t.Errorf("One({}) = %+v, want nil", got)
	}
	if got := One("not an object", decodePair); got != nil {
		t.Errorf("One(string) = %+v, want nil", got)
	}
	got := One(Object{"name": "x"}, decodePair)
	if got == nil || got.Name == nil || *got.Name != "x" {
		t.Errorf("One = %+v, want name x", got)
	}
}

func TestMany(t *testing.T) {
	input := []any{
		Object{"name": "first"},
		nil,
		Object{},
		"junk",
		Object{"other": 1},
		Object{"name": "last"},
	}

	got := Many(input, decodePair)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Name == nil || *got[0].Name != "first" {
		t.Errorf("got[0] = %+v, want first", got[0])
	}
	if got[1].Name != nil {
		t.Errorf("got[1].Name = %q, want absent", *got[1].Name)
	}
	if got[2].Name == nil || *got[2].Name != "last" {
		t.Errorf("got[2] = %+v, want last", got[2])
	}
}

func TestMany_AbsentInput(t *testing.T) {
	for _, v := range []any{nil, Object{}, "x"} {
		got := Many(v, decodePair)
		if got == nil {
			t.Errorf("Many(%v) returned nil, want empty slice", v)
		}
		if len(got) != 0 {
			t.Errorf("Many(%v) len = %d, want 0", v, len(got))
		}
	}
}

func TestField(t *testing.T) {
	obj := Object{"items": []any{Object{"name": "a"}}, "empty": []any{}}

	if got := Field(obj, "missing", decodePair); got != nil {
		t.Errorf("Field(missing) = %v, want nil", got)
	}
	if got := Field(obj, "empty", decodePair); got == nil || len(got) != 0 {
		t.Errorf("Field(empty) = %v, want empty non-nil", got)
	}
	if got := Field(obj, "items", decodePair); len(got) != 1 {
		t.Errorf("Field(items) len = %d, want 1", len(got))
	}
}
