package language

import "testing"

func TestPrintNodes(t *testing.T) {
	tests := []struct {
		name string
		node Value
		want string
	}{
		{"null", &NullValue{}, "null"},
		{"true", &BooleanValue{Value: true}, "true"},
		{"false", &BooleanValue{Value: false}, "false"},
		{"int", &IntValue{Raw: "-42"}, "-42"},
		{"float", &FloatValue{Raw: "2.5"}, "2.5"},
		{"enum", &EnumValue{Value: "RED"}, "RED"},
		{"string", &StringValue{Value: "hi"}, `"hi"`},
		{"empty list", &ListValue{}, "[]"},
		{"empty object", &ObjectValue{}, "{}"},
		{
			"list",
			&ListValue{Values: []Value{&IntValue{Raw: "1"}, &IntValue{Raw: "2"}}},
			"[1, 2]",
		},
		{
			"object",
			&ObjectValue{Fields: []*ObjectField{
				{Name: "x", Value: &IntValue{Raw: "1"}},
				{Name: "y", Value: &NullValue{}},
			}},
			"{x: 1, y: null}",
		},
		{
			"nested",
			&ObjectValue{Fields: []*ObjectField{
				{Name: "p", Value: &ListValue{Values: []Value{&EnumValue{Value: "A"}}}},
			}},
			"{p: [A]}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.node); got != tt.want {
				t.Errorf("Print() = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestPrintSkipsAbsentListPositions(t *testing.T) {
	list := &ListValue{Values: []Value{
		nil,
		&IntValue{Raw: "1"},
		nil,
		&IntValue{Raw: "2"},
		nil,
	}}

	if got := Print(list); got != "[1, 2]" {
		t.Errorf("Print() = %s, expected [1, 2]", got)
	}
}

func TestPrintStringEscaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain", "abc", `"abc"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline and tab", "a\n\tb", `"a\n\tb"`},
		{"control character", "a\x01b", `"a\u0001b"`},
		{"non-ascii passes through", "héllo", `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(&StringValue{Value: tt.value}); got != tt.want {
				t.Errorf("Print() = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestPrintedStringsReparse(t *testing.T) {
	for _, s := range []string{"", "plain", "a\nb", `quo"te`, "tab\there", "uni é 😀"} {
		printed := Print(&StringValue{Value: s})
		node, err := ParseValue(printed)
		if err != nil {
			t.Fatalf("ParseValue(%s) failed: %v", printed, err)
		}
		parsed, ok := node.(*StringValue)
		if !ok {
			t.Fatalf("got %T, expected *StringValue", node)
		}
		if parsed.Value != s {
			t.Errorf("round trip changed %q to %q", s, parsed.Value)
		}
	}
}
