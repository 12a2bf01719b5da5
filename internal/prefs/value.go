// Package prefs provides a namespaced, typed preference store on top of a
// flat key-value database file.
//
// Values are modeled as a tagged variant over the JSON shapes (null, bool,
// int, float, string, list, map) and persisted as their JSON encoding under
// a "prefs:"-prefixed key. Entries written by older code that predate the
// JSON encoding are still readable: anything that fails to decode is
// surfaced as a plain string value rather than an error.
package prefs

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind identifies which shape a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a preference value: one of null, bool, int, float, string,
// list, or string-keyed map. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	l    []Value
	m    map[string]Value
}

// Null is the null Value.
var Null = Value{}

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Int(i int64) Value { return Value{kind: KindInt, i: i} }
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }
func String(s string) Value { return Value{kind: KindString, s: s} }
func List(vs ...Value) Value { return Value{kind: KindList, l: vs} }
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Kind reports the shape this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Payload accessors return the zero value when the Value holds a
// different kind.

func (v Value) Bool() bool { return v.b }
func (v Value) Int() int64 { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Text() string { return v.s }
func (v Value) List() []Value { return v.l }
func (v Value) Map() map[string]Value { return v.m }

// Equal reports deep equality. Kinds must match exactly: Int(1) and
// Float(1) are not equal.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f
	case KindString:
		return v.s == w.s
	case KindList:
		if len(v.l) != len(w.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(w.l[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(w.m) {
			return false
		}
		for k, vv := range v.m {
			wv, ok := w.m[k]
			if !ok || !vv.Equal(wv) {
				return false
			}
		}
		return true
	}
	return false
}

// String returns the JSON encoding, for display. Falls back to the raw
// string payload if encoding fails (it cannot for values built through
// the constructors).
func (v Value) String() string {
	s, err := v.Encode()
	if err != nil {
		return v.s
	}
	return s
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindBool:
		return strconv.AppendBool(nil, v.b), nil
	case KindInt:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	case KindList:
		if v.l == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.l)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	}
	return nil, fmt.Errorf("unknown kind %v", v.kind)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	val, err := fromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// Encode returns the JSON serialization persisted to the backing store.
func (v Value) Encode() (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode parses a stored JSON serialization back into a Value. Integral
// number literals decode as KindInt, everything else numeric as KindFloat.
// Trailing non-whitespace content is an error so that raw legacy text is
// never half-parsed.
func Decode(s string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Null, err
	}
	// json.Decoder stops at the end of the first value; anything left
	// over means the input was not a single JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return Null, fmt.Errorf("trailing data after JSON value")
	}
	return fromAny(raw)
}

func fromAny(raw any) (Value, error) {
	switch x := raw.(type) {
	case nil:
		return Null, nil
	case bool:
		return Bool(x), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Null, err
		}
		return Float(f), nil
	case string:
		return String(x), nil
	case []any:
		l := make([]Value, len(x))
		for i, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return Null, err
			}
			l[i] = v
		}
		return Value{kind: KindList, l: l}, nil
	case map[string]any:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			v, err := fromAny(e)
			if err != nil {
				return Null, err
			}
			m[k] = v
		}
		return Map(m), nil
	}
	return Null, fmt.Errorf("unsupported JSON shape %T", raw)
}
