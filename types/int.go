package types

import "strconv"

// IntValue represents an integer
type IntValue struct {
	Val int64
}

// Kind returns the kind for integers
func (i IntValue) Kind() Kind {
	return KIND_INT
}

// String returns the debug representation
func (i IntValue) String() string {
	return strconv.FormatInt(i.Val, 10)
}

// Equal checks deep equality
func (i IntValue) Equal(other Value) bool {
	otherInt, ok := other.(IntValue)
	if !ok {
		return false
	}
	return i.Val == otherInt.Val
}

// NewInt creates a new IntValue
func NewInt(val int64) IntValue {
	return IntValue{Val: val}
}
