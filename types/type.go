package types

// Type is the interface all input type descriptors implement. The
// concrete shapes form a closed set: NonNullType, ListType,
// InputObjectType, ScalarType, and EnumType. Code dispatching on shape
// uses a type switch over these, not predicate methods.
type Type interface {
	String() string // type notation, e.g. "[Int!]"
	inputType()
}

// LeafType is a type with no internal structure: a scalar or an enum.
// Serialize turns a runtime value into its external representation,
// one of bool, int64, float64, or string. A nil result means the value
// is nullish or cannot be serialized by this type.
type LeafType interface {
	Type
	Serialize(Value) any
}

// NamedType is a type addressable by name in a registry
type NamedType interface {
	Type
	TypeName() string
}

// NonNullType forbids an explicit null literal at this position
type NonNullType struct {
	OfType Type
}

func (t *NonNullType) String() string { return t.OfType.String() + "!" }
func (t *NonNullType) inputType()     {}

// NonNull wraps a type in a non-null modifier
func NonNull(of Type) *NonNullType {
	return &NonNullType{OfType: of}
}

// ListType is a list of the item type
type ListType struct {
	OfType Type
}

func (t *ListType) String() string { return "[" + t.OfType.String() + "]" }
func (t *ListType) inputType()     {}

// ListOf wraps a type in a list modifier
func ListOf(of Type) *ListType {
	return &ListType{OfType: of}
}

// InputField is a single declared field of an input object
type InputField struct {
	Name string
	Type Type
}

// InputObjectType is a structured input type. Fields keep their
// declaration order; conversion iterates them in that order.
type InputObjectType struct {
	Name   string
	Fields []*InputField
}

func (t *InputObjectType) String() string   { return t.Name }
func (t *InputObjectType) TypeName() string { return t.Name }
func (t *InputObjectType) inputType()       {}

// Field returns the declared field with the given name
func (t *InputObjectType) Field(name string) (*InputField, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
