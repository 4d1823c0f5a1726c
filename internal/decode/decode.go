// Licensed to Andrew Kroh under one or more agreements.
// Andrew Kroh licenses this file to you under the Apache 2.0 License.
// See the LICENSE file in the project root for more information.

// Package decode provides tolerant readers for loosely typed JSON objects.
//
// Every reader is total: a missing key, a JSON null, or a value of the wrong
// type yields an absent (nil) result rather than an error.
package decode

import (
	"bytes"
	"encoding/json"
	"math"
)

// Object is a decoded JSON object.
type Object = map[string]any

// Parse decodes a JSON document. Numbers are kept as json.Number so that
// large integers are not rounded. It returns false for empty or malformed
// input.
func Parse(data []byte) (any, bool) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, false
	}
	return v, true
}

// AsObject returns v as an Object, or nil if v is not a JSON object.
func AsObject(v any) Object {
	obj, _ := v.(map[string]any)
	return obj
}

// String returns the string stored under key.
func String(obj Object, key string) *string {
	s, ok := obj[key].(string)
	if !ok {
		return nil
	}
	return &s
}

// Bool returns the boolean stored under key.
func Bool(obj Object, key string) *bool {
	b, ok := obj[key].(bool)
	if !ok {
		return nil
	}
	return &b
}

// Int returns the integer stored under key.
func Int(obj Object, key string) *int64 {
	n, ok := toInt(obj[key])
	if !ok {
		return nil
	}
	return &n
}

// Float returns the number stored under key.
func Float(obj Object, key string) *float64 {
	f, ok := toFloat(obj[key])
	if !ok {
		return nil
	}
	return &f
}

// Strings returns the string elements of the list stored under key.
// Non-string elements are skipped.
func Strings(obj Object, key string) []string {
	switch v := obj[key].(type) {
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Ints returns the integer elements of the list stored under key.
// Non-integer elements are skipped.
func Ints(obj Object, key string) []int64 {
	switch v := obj[key].(type) {
	case []int64:
		return append([]int64{}, v...)
	case []int:
		out := make([]int64, 0, len(v))
		for _, n := range v {
			out = append(out, int64(n))
		}
		return out
	case []any:
		out := make([]int64, 0, len(v))
		for _, e := range v {
			if n, ok := toInt(e); ok {
				out = append(out, n)
			}
		}
		return out
	default:
		return nil
	}
}

// Map returns the object stored under key.
func Map(obj Object, key string) Object {
	return AsObject(obj[key])
}

// One decodes v with fn. A v that is absent, not an object, or empty
// yields nil because fn maps empty input to nil.
func One[T any](v any, fn func(Object) *T) *T {
	return fn(AsObject(v))
}

// Many decodes every element of the list v with fn. Elements that are not
// objects or that decode to nil are dropped; order is preserved. The
// result is never nil.
func Many[T any](v any, fn func(Object) *T) []T {
	list, _ := v.([]any)
	out := make([]T, 0, len(list))
	for _, e := range list {
		if rec := fn(AsObject(e)); rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

// Field decodes the list stored under key. It returns nil when the key is
// missing or does not hold a list, so that an absent attribute stays absent.
func Field[T any](obj Object, key string, fn func(Object) *T) []T {
	v, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	return Many(v, fn)
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}

func floatToInt(f float64) (int64, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
