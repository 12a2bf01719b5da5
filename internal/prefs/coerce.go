package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce converts v to the requested kind, used by Store.GetAs for
// preferences written in one shape and read back in another (most
// commonly a string that should be a bool or a number).
//
// Strings coerced to bool first go through a truthy/falsy word table,
// case-insensitive with surrounding whitespace stripped. Anything not in
// the table falls through to the generic cast. A failed cast returns an
// error; callers substitute their default rather than surfacing it.
func Coerce(v Value, want Kind) (Value, error) {
	if v.kind == want {
		return v, nil
	}

	if want == KindBool && v.kind == KindString {
		switch strings.ToLower(strings.TrimSpace(v.s)) {
		case "1", "true", "yes", "y", "on":
			return Bool(true), nil
		case "0", "false", "no", "n", "off":
			return Bool(false), nil
		}
	}

	switch want {
	case KindBool:
		// Generic truthiness: zero and empty are false.
		switch v.kind {
		case KindInt:
			return Bool(v.i != 0), nil
		case KindFloat:
			return Bool(v.f != 0), nil
		case KindString:
			return Bool(v.s != ""), nil
		case KindList:
			return Bool(len(v.l) != 0), nil
		case KindMap:
			return Bool(len(v.m) != 0), nil
		}
	case KindInt:
		switch v.kind {
		case KindBool:
			if v.b {
				return Int(1), nil
			}
			return Int(0), nil
		case KindFloat:
			return Int(int64(v.f)), nil
		case KindString:
			i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
			if err != nil {
				return Null, fmt.Errorf("cannot coerce %q to int: %w", v.s, err)
			}
			return Int(i), nil
		}
	case KindFloat:
		switch v.kind {
		case KindBool:
			if v.b {
				return Float(1), nil
			}
			return Float(0), nil
		case KindInt:
			return Float(float64(v.i)), nil
		case KindString:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
			if err != nil {
				return Null, fmt.Errorf("cannot coerce %q to float: %w", v.s, err)
			}
			return Float(f), nil
		}
	case KindString:
		switch v.kind {
		case KindBool:
			return String(strconv.FormatBool(v.b)), nil
		case KindInt:
			return String(strconv.FormatInt(v.i, 10)), nil
		case KindFloat:
			return String(strconv.FormatFloat(v.f, 'g', -1, 64)), nil
		case KindList, KindMap:
			s, err := v.Encode()
			if err != nil {
				return Null, err
			}
			return String(s), nil
		}
	}

	return Null, fmt.Errorf("cannot coerce %v to %v", v.kind, want)
}

// ParseKind maps a kind name to its Kind, for CLI flags.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "bool":
		return KindBool, nil
	case "int":
		return KindInt, nil
	case "float":
		return KindFloat, nil
	case "string":
		return KindString, nil
	default:
		return KindNull, fmt.Errorf("unknown kind %q (want bool, int, float, or string)", name)
	}
}
