package types

import (
	"strings"
	"testing"
)

func TestRegistryBuiltins(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Int", "Float", "String", "Boolean", "ID"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("built-in %s missing from new registry", name)
		}
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := NewRegistry()

	color := NewEnum("Color", "RED")
	if err := reg.Register(color); err != nil {
		t.Fatalf("Register(Color) failed: %v", err)
	}
	if got, ok := reg.Lookup("Color"); !ok || got != Type(color) {
		t.Error("Lookup(Color) did not return the registered type")
	}

	if err := reg.Register(NewEnum("Color", "BLUE")); err == nil {
		t.Error("re-registering Color should fail")
	}
	if err := reg.Register(&ScalarType{Name: ""}); err == nil {
		t.Error("registering an empty name should fail")
	}
}

func TestParseRef(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		ref  string
		want string // String() of the parsed type
	}{
		{"Int", "Int"},
		{"Int!", "Int!"},
		{"[Int]", "[Int]"},
		{"[Int!]", "[Int!]"},
		{"[Int!]!", "[Int!]!"},
		{"[[ID]]", "[[ID]]"},
		{"  [ String ] ", "[String]"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			typ, err := reg.ParseRef(tt.ref)
			if err != nil {
				t.Fatalf("ParseRef(%q) failed: %v", tt.ref, err)
			}
			if typ.String() != tt.want {
				t.Errorf("ParseRef(%q) = %s, expected %s", tt.ref, typ, tt.want)
			}
		})
	}
}

func TestParseRefErrors(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		ref     string
		message string
	}{
		{"", "empty type reference"},
		{"Missing", "unknown type name"},
		{"[Int", "missing closing"},
		{"Int]", "trailing"},
		{"Int!!", "trailing"},
		{"!", "expected a type name"},
		{"[]", "expected a type name"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, err := reg.ParseRef(tt.ref)
			if err == nil {
				t.Fatalf("ParseRef(%q) should fail", tt.ref)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("ParseRef(%q) error = %q, expected to contain %q", tt.ref, err, tt.message)
			}
		})
	}
}

func TestTypeNotation(t *testing.T) {
	point := &InputObjectType{Name: "Point", Fields: []*InputField{
		{Name: "x", Type: Int},
		{Name: "y", Type: NonNull(Int)},
	}}

	if point.String() != "Point" {
		t.Errorf("object notation = %q", point.String())
	}
	if got := NonNull(ListOf(NonNull(Int))).String(); got != "[Int!]!" {
		t.Errorf("wrapped notation = %q, expected [Int!]!", got)
	}

	f, ok := point.Field("y")
	if !ok || f.Type.String() != "Int!" {
		t.Error("Field(y) lookup failed")
	}
	if _, ok := point.Field("z"); ok {
		t.Error("Field(z) should be absent")
	}
}
