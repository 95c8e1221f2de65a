package types

// NullValue represents an explicit null
type NullValue struct{}

// Kind returns the kind for explicit null
func (n NullValue) Kind() Kind {
	return KIND_NULL
}

// String returns the debug representation
func (n NullValue) String() string {
	return "null"
}

// Equal checks deep equality
func (n NullValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	_, ok := other.(NullValue)
	return ok
}

// InvalidValue is the "unrepresentable" sentinel: a missing or
// undefined value. It is distinct from NullValue and never produces a
// null literal.
type InvalidValue struct{}

// Kind returns the kind for the invalid sentinel
func (i InvalidValue) Kind() Kind {
	return KIND_INVALID
}

// String returns the debug representation
func (i InvalidValue) String() string {
	return "<invalid>"
}

// Equal checks deep equality
func (i InvalidValue) Equal(other Value) bool {
	if other == nil {
		return false
	}
	_, ok := other.(InvalidValue)
	return ok
}
