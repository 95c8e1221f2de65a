package types

import "testing"

func TestDecodeJSONScalars(t *testing.T) {
	tests := []struct {
		name string
		json string
		want Value
	}{
		{"null", `null`, NullValue{}},
		{"true", `true`, NewBool(true)},
		{"int", `42`, NewInt(42)},
		{"negative int", `-7`, NewInt(-7)},
		{"float", `2.5`, NewFloat(2.5)},
		{"exponent is a float", `1e3`, NewFloat(1000)},
		{"trailing zero fraction is a float", `3.0`, NewFloat(3)},
		{"string", `"hi"`, NewStr("hi")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.json))
			if err != nil {
				t.Fatalf("DecodeJSON(%s) failed: %v", tt.json, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("DecodeJSON(%s) = %s, expected %s", tt.json, got, tt.want)
			}
		})
	}
}

func TestDecodeJSONCompound(t *testing.T) {
	got, err := DecodeJSON([]byte(`{"b": [1, 2.5, null], "a": {"nested": true}}`))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	m, ok := got.(MapValue)
	if !ok {
		t.Fatalf("expected a map, got %T", got)
	}

	// Key order must match the document, not Go map iteration
	pairs := m.Pairs()
	if len(pairs) != 2 || pairs[0].Name != "b" || pairs[1].Name != "a" {
		t.Fatalf("key order not preserved: %v", pairs)
	}

	want := NewList([]Value{NewInt(1), NewFloat(2.5), NullValue{}})
	if !pairs[0].Value.Equal(want) {
		t.Errorf("b = %s, expected %s", pairs[0].Value, want)
	}

	nested, ok := pairs[1].Value.(MapValue)
	if !ok {
		t.Fatalf("a should be a map, got %T", pairs[1].Value)
	}
	v, _ := nested.Get("nested")
	if !v.Equal(NewBool(true)) {
		t.Errorf("a.nested = %s, expected true", v)
	}
}

func TestDecodeJSONBigInteger(t *testing.T) {
	// Too big for int64; falls back to a float
	got, err := DecodeJSON([]byte(`92233720368547758080`))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if _, ok := got.(FloatValue); !ok {
		t.Errorf("expected a float fallback, got %T", got)
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"empty", ``},
		{"garbage", `{`},
		{"trailing data", `1 2`},
		{"bare word", `nope`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeJSON([]byte(tt.json)); err == nil {
				t.Errorf("DecodeJSON(%q) should fail", tt.json)
			}
		})
	}
}
