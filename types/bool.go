package types

// BoolValue represents a boolean
type BoolValue struct {
	Val bool
}

// Kind returns the kind for booleans
func (b BoolValue) Kind() Kind {
	return KIND_BOOL
}

// String returns the debug representation
func (b BoolValue) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Equal checks deep equality
func (b BoolValue) Equal(other Value) bool {
	otherBool, ok := other.(BoolValue)
	if !ok {
		return false
	}
	return b.Val == otherBool.Val
}

// NewBool creates a new BoolValue
func NewBool(val bool) BoolValue {
	return BoolValue{Val: val}
}
