package language

import (
	"strings"
	"testing"
)

func TestParseValueScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v Value)
	}{
		{"int", "42", func(t *testing.T, v Value) {
			n, ok := v.(*IntValue)
			if !ok || n.Raw != "42" {
				t.Errorf("got %T %v", v, v)
			}
		}},
		{"float", "3.14", func(t *testing.T, v Value) {
			n, ok := v.(*FloatValue)
			if !ok || n.Raw != "3.14" {
				t.Errorf("got %T %v", v, v)
			}
		}},
		{"string", `"hi there"`, func(t *testing.T, v Value) {
			n, ok := v.(*StringValue)
			if !ok || n.Value != "hi there" {
				t.Errorf("got %T %v", v, v)
			}
		}},
		{"null", "null", func(t *testing.T, v Value) {
			if _, ok := v.(*NullValue); !ok {
				t.Errorf("got %T", v)
			}
		}},
		{"true", "true", func(t *testing.T, v Value) {
			n, ok := v.(*BooleanValue)
			if !ok || !n.Value {
				t.Errorf("got %T %v", v, v)
			}
		}},
		{"false", "false", func(t *testing.T, v Value) {
			n, ok := v.(*BooleanValue)
			if !ok || n.Value {
				t.Errorf("got %T %v", v, v)
			}
		}},
		{"enum", "RED", func(t *testing.T, v Value) {
			n, ok := v.(*EnumValue)
			if !ok || n.Value != "RED" {
				t.Errorf("got %T %v", v, v)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.input)
			if err != nil {
				t.Fatalf("ParseValue(%q) failed: %v", tt.input, err)
			}
			tt.check(t, v)
		})
	}
}

func TestParseValueLists(t *testing.T) {
	v, err := ParseValue("[1, [2, 3], RED]")
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}

	list, ok := v.(*ListValue)
	if !ok {
		t.Fatalf("got %T, expected *ListValue", v)
	}
	if len(list.Values) != 3 {
		t.Fatalf("len = %d, expected 3", len(list.Values))
	}
	inner, ok := list.Values[1].(*ListValue)
	if !ok || len(inner.Values) != 2 {
		t.Errorf("nested list not parsed: %T", list.Values[1])
	}

	empty, err := ParseValue("[]")
	if err != nil {
		t.Fatalf("ParseValue([]) failed: %v", err)
	}
	if l, ok := empty.(*ListValue); !ok || len(l.Values) != 0 {
		t.Errorf("empty list not parsed: %T", empty)
	}
}

func TestParseValueObjects(t *testing.T) {
	v, err := ParseValue(`{name: "bo", point: {x: 1, y: 2}, tags: []}`)
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}

	obj, ok := v.(*ObjectValue)
	if !ok {
		t.Fatalf("got %T, expected *ObjectValue", v)
	}
	if len(obj.Fields) != 3 {
		t.Fatalf("fields = %d, expected 3", len(obj.Fields))
	}
	if obj.Fields[0].Name != "name" || obj.Fields[1].Name != "point" || obj.Fields[2].Name != "tags" {
		t.Errorf("field order not preserved: %v", obj.Fields)
	}
	if _, ok := obj.Fields[1].Value.(*ObjectValue); !ok {
		t.Errorf("nested object not parsed: %T", obj.Fields[1].Value)
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty input", "", "unexpected EOF"},
		{"trailing tokens", "1 2", "after literal"},
		{"unterminated list", "[1, 2", "unterminated list"},
		{"unterminated object", "{x: 1", "unterminated object"},
		{"missing colon", "{x 1}", "expected ':'"},
		{"non-name key", `{"x": 1}`, "expected field name"},
		{"bare punctuation", "]", "unexpected"},
		{"illegal number", "007", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseValue(tt.input)
			if err == nil {
				t.Fatalf("ParseValue(%q) should fail", tt.input)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error = %q, expected to contain %q", err, tt.message)
			}
		})
	}
}

func TestParseValuePositions(t *testing.T) {
	v, err := ParseValue("[\n  42\n]")
	if err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}

	list := v.(*ListValue)
	if list.Position().Line != 1 {
		t.Errorf("list line = %d, expected 1", list.Position().Line)
	}
	if list.Values[0].Position().Line != 2 {
		t.Errorf("element line = %d, expected 2", list.Values[0].Position().Line)
	}
}
