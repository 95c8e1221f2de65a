package types

import (
	"math"
	"strconv"
)

// FloatValue represents a floating point number
type FloatValue struct {
	Val float64
}

// Kind returns the kind for floats
func (f FloatValue) Kind() Kind {
	return KIND_FLOAT
}

// String returns the debug representation
func (f FloatValue) String() string {
	if math.IsNaN(f.Val) {
		return "NaN"
	}
	if math.IsInf(f.Val, 1) {
		return "Inf"
	}
	if math.IsInf(f.Val, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(f.Val, 'g', -1, 64)
}

// Equal checks deep equality
// NaN != NaN (IEEE 754 semantics)
func (f FloatValue) Equal(other Value) bool {
	otherFloat, ok := other.(FloatValue)
	if !ok {
		return false
	}
	if math.IsNaN(f.Val) || math.IsNaN(otherFloat.Val) {
		return false
	}
	return f.Val == otherFloat.Val
}

// NewFloat creates a new FloatValue
func NewFloat(val float64) FloatValue {
	return FloatValue{Val: val}
}

// IsNaN returns true if the float is NaN
func (f FloatValue) IsNaN() bool {
	return math.IsNaN(f.Val)
}

// IsInf returns true if the float is infinite
func (f FloatValue) IsInf() bool {
	return math.IsInf(f.Val, 0)
}
