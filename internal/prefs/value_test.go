package prefs

import (
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Value
	}{
		{"null", Null},
		{"bool-true", Bool(true)},
		{"bool-false", Bool(false)},
		{"int", Int(42)},
		{"negative-int", Int(-7)},
		{"float", Float(3.14)},
		{"string", String("test_value")},
		{"empty-string", String("")},
		{"unicode-string", String("Hello 世界 🌍")},
		{"list", List(Int(1), Int(2), Int(3), String("four"))},
		{"empty-list", List()},
		{"map", Map(map[string]Value{
			"name":    String("test"),
			"count":   Int(5),
			"enabled": Bool(true),
		})},
		{"nested", Map(map[string]Value{
			"level1": Map(map[string]Value{
				"level2": Map(map[string]Value{
					"data": List(Int(1), Int(2), Map(map[string]Value{
						"nested_list": List(Int(4), Int(5), Int(6)),
					})),
				}),
			}),
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := tc.v.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(%q): %v", encoded, err)
			}
			if !decoded.Equal(tc.v) {
				t.Errorf("round trip: got %v, want %v", decoded, tc.v)
			}
		})
	}
}

func TestDecodeIntStaysInt(t *testing.T) {
	t.Parallel()

	v, err := Decode("42")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Kind() != KindInt {
		t.Errorf("kind = %v, want int", v.Kind())
	}
	if v.Int() != 42 {
		t.Errorf("Int() = %d, want 42", v.Int())
	}
}

func TestDecodeFloat(t *testing.T) {
	t.Parallel()

	v, err := Decode("3.14")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Kind() != KindFloat {
		t.Errorf("kind = %v, want float", v.Kind())
	}
	if v.Float() != 3.14 {
		t.Errorf("Float() = %v, want 3.14", v.Float())
	}
}

func TestDecodeRejectsRawText(t *testing.T) {
	t.Parallel()

	// Raw legacy values must fail Decode so the store's fallback kicks in.
	for _, raw := range []string{"raw_bytes_value", "not json at all", `"half" extra`} {
		if _, err := Decode(raw); err == nil {
			t.Errorf("Decode(%q): expected error", raw)
		}
	}
}

func TestEqualDistinguishesKinds(t *testing.T) {
	t.Parallel()

	if Int(1).Equal(Float(1)) {
		t.Error("Int(1) should not equal Float(1)")
	}
	if Int(1).Equal(Bool(true)) {
		t.Error("Int(1) should not equal Bool(true)")
	}
	if !Null.Equal(Value{}) {
		t.Error("zero Value should equal Null")
	}
}

func TestCoerceBoolTruthyTable(t *testing.T) {
	t.Parallel()

	truthy := []string{"1", "true", "True", "TRUE", "yes", "Yes", "y", "Y", "on", "ON"}
	for _, s := range truthy {
		v, err := Coerce(String(s), KindBool)
		if err != nil {
			t.Fatalf("Coerce(%q): %v", s, err)
		}
		if !v.Bool() {
			t.Errorf("Coerce(%q) = false, want true", s)
		}
	}

	falsy := []string{"0", "false", "False", "FALSE", "no", "No", "n", "N", "off", "OFF"}
	for _, s := range falsy {
		v, err := Coerce(String(s), KindBool)
		if err != nil {
			t.Fatalf("Coerce(%q): %v", s, err)
		}
		if v.Bool() {
			t.Errorf("Coerce(%q) = true, want false", s)
		}
	}
}

func TestCoerceBoolStripsWhitespace(t *testing.T) {
	t.Parallel()

	v, err := Coerce(String("  true  "), KindBool)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	if !v.Bool() {
		t.Error("expected true")
	}
}

func TestCoerceBoolGenericFallthrough(t *testing.T) {
	t.Parallel()

	// Not in the word table: non-empty strings are truthy, empty falsy.
	v, err := Coerce(String("maybe"), KindBool)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	if !v.Bool() {
		t.Error("non-empty string should coerce to true")
	}

	v, err = Coerce(String(""), KindBool)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	if v.Bool() {
		t.Error("empty string should coerce to false")
	}
}

func TestCoerceStringToNumber(t *testing.T) {
	t.Parallel()

	v, err := Coerce(String("42"), KindInt)
	if err != nil {
		t.Fatalf("Coerce to int: %v", err)
	}
	if v.Int() != 42 {
		t.Errorf("Int() = %d, want 42", v.Int())
	}

	v, err = Coerce(String("3.14"), KindFloat)
	if err != nil {
		t.Fatalf("Coerce to float: %v", err)
	}
	if v.Float() != 3.14 {
		t.Errorf("Float() = %v, want 3.14", v.Float())
	}
}

func TestCoerceFailure(t *testing.T) {
	t.Parallel()

	if _, err := Coerce(String("not_a_number"), KindInt); err == nil {
		t.Error("expected error coercing non-numeric string to int")
	}
	if _, err := Coerce(List(Int(1)), KindInt); err == nil {
		t.Error("expected error coercing list to int")
	}
}

func TestCoerceSameKindIsIdentity(t *testing.T) {
	t.Parallel()

	v := Map(map[string]Value{"a": Int(1)})
	got, err := Coerce(v, KindMap)
	if err != nil {
		t.Fatalf("Coerce: %v", err)
	}
	if !got.Equal(v) {
		t.Errorf("got %v, want %v", got, v)
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Kind{
		"bool":   KindBool,
		"int":    KindInt,
		"float":  KindFloat,
		"string": KindString,
		"BOOL":   KindBool,
	} {
		got, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseKind(%q) = %v, want %v", name, got, want)
		}
	}

	if _, err := ParseKind("complex"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
