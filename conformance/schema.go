package conformance

import "gopkg.in/yaml.v3"

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Types       []TypeDecl `yaml:"types,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TypeDecl declares an enum or input object registered for the suite
// on top of the built-in scalars. Exactly one of Enum or Input is set.
type TypeDecl struct {
	Enum   string      `yaml:"enum,omitempty"`
	Values []string    `yaml:"values,omitempty"` // enum member names
	Input  string      `yaml:"input,omitempty"`
	Fields []FieldDecl `yaml:"fields,omitempty"` // input object fields, in order
}

// FieldDecl is a single input object field declaration
type FieldDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // type notation, e.g. "[Int!]"
}

// TestCase represents a single conversion test within a suite.
// The input value comes from exactly one of: the `value` key (kept as
// a raw YAML node so an absent key stays distinguishable from an
// explicit null; when the key is missing the node stays zero),
// `value_json` (a JSON document), or `invalid: true` (the
// unrepresentable sentinel).
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Type        string      `yaml:"type"` // type notation
	Value       yaml.Node   `yaml:"value,omitempty"`
	ValueJSON   string      `yaml:"value_json,omitempty"`
	Invalid     bool        `yaml:"invalid,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test: the printed
// literal, the explicit absent outcome, or an error substring
type Expectation struct {
	Literal *string `yaml:"literal,omitempty"`
	Absent  bool    `yaml:"absent,omitempty"`
	Error   string  `yaml:"error,omitempty"`
}
