package language

// Position identifies a location in literal source text. Nodes built
// programmatically (e.g. by FromValue) carry a zero position.
type Position struct {
	Line   int
	Column int
}

// Node is the base interface for all AST nodes
type Node interface {
	Position() Position
}

// Value is the interface for literal value nodes: a value written
// directly in source syntax, such as 42, "foo", or [1, 2].
type Value interface {
	Node
	valueNode()
}

// NullValue represents an explicit null literal
type NullValue struct {
	Pos Position
}

func (v *NullValue) Position() Position { return v.Pos }
func (v *NullValue) valueNode()         {}

// BooleanValue represents true or false
type BooleanValue struct {
	Pos   Position
	Value bool
}

func (v *BooleanValue) Position() Position { return v.Pos }
func (v *BooleanValue) valueNode()         {}

// IntValue represents an integer literal. Raw keeps the exact source
// text: canonical decimal, sign only if negative, no leading zeros.
type IntValue struct {
	Pos Position
	Raw string
}

func (v *IntValue) Position() Position { return v.Pos }
func (v *IntValue) valueNode()         {}

// FloatValue represents a float literal, with its source text
type FloatValue struct {
	Pos Position
	Raw string
}

func (v *FloatValue) Position() Position { return v.Pos }
func (v *FloatValue) valueNode()         {}

// StringValue represents a quoted string literal. Value holds the
// unescaped contents, without the surrounding quotes.
type StringValue struct {
	Pos   Position
	Value string
}

func (v *StringValue) Position() Position { return v.Pos }
func (v *StringValue) valueNode()         {}

// EnumValue represents a bare enum member name
type EnumValue struct {
	Pos   Position
	Value string
}

func (v *EnumValue) Position() Position { return v.Pos }
func (v *EnumValue) valueNode()         {}

// ListValue represents a list literal: [a, b, c]. A nil element marks
// a position whose conversion produced no literal; the printer skips
// it but the position is preserved in the node.
type ListValue struct {
	Pos    Position
	Values []Value
}

func (v *ListValue) Position() Position { return v.Pos }
func (v *ListValue) valueNode()         {}

// ObjectValue represents an object literal: {name: value, ...}
type ObjectValue struct {
	Pos    Position
	Fields []*ObjectField
}

func (v *ObjectValue) Position() Position { return v.Pos }
func (v *ObjectValue) valueNode()         {}

// ObjectField is a single name/value entry of an object literal
type ObjectField struct {
	Pos   Position
	Name  string
	Value Value
}

func (f *ObjectField) Position() Position { return f.Pos }
