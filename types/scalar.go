package types

import (
	"math"
	"strconv"
	"strings"
)

// ScalarType is a leaf type defined by how it serializes runtime
// values. SerializeFn returns one of bool, int64, float64, or string,
// or nil when the value is nullish or outside the scalar's domain.
type ScalarType struct {
	Name        string
	SerializeFn func(Value) any
}

func (t *ScalarType) String() string   { return t.Name }
func (t *ScalarType) TypeName() string { return t.Name }
func (t *ScalarType) inputType()       {}

// Serialize applies the scalar's serializer
func (t *ScalarType) Serialize(v Value) any {
	if v == nil {
		return nil
	}
	return t.SerializeFn(v)
}

// Int range per the query language: 32-bit signed
const (
	intMax = math.MaxInt32
	intMin = math.MinInt32
)

// Built-in scalar types
var (
	Int = &ScalarType{Name: "Int", SerializeFn: serializeInt}

	Float = &ScalarType{Name: "Float", SerializeFn: serializeFloat}

	String = &ScalarType{Name: "String", SerializeFn: serializeString}

	Boolean = &ScalarType{Name: "Boolean", SerializeFn: serializeBoolean}

	// ID is the identifier leaf. Its values serialize as strings, but
	// numeric-looking identifiers may be rendered as integer literals.
	ID = &ScalarType{Name: "ID", SerializeFn: serializeID}
)

func serializeInt(v Value) any {
	switch val := v.(type) {
	case BoolValue:
		if val.Val {
			return int64(1)
		}
		return int64(0)
	case IntValue:
		if val.Val < intMin || val.Val > intMax {
			return nil
		}
		return val.Val
	case FloatValue:
		if val.IsNaN() || val.IsInf() || val.Val != math.Trunc(val.Val) {
			return nil
		}
		if val.Val < intMin || val.Val > intMax {
			return nil
		}
		return int64(val.Val)
	case StrValue:
		n, err := strconv.ParseInt(strings.TrimSpace(val.Value()), 10, 64)
		if err != nil || n < intMin || n > intMax {
			return nil
		}
		return n
	default:
		return nil
	}
}

func serializeFloat(v Value) any {
	switch val := v.(type) {
	case BoolValue:
		if val.Val {
			return float64(1)
		}
		return float64(0)
	case IntValue:
		return float64(val.Val)
	case FloatValue:
		if val.IsNaN() || val.IsInf() {
			return nil
		}
		return val.Val
	case StrValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(val.Value()), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return f
	default:
		return nil
	}
}

func serializeString(v Value) any {
	switch val := v.(type) {
	case StrValue:
		return val.Value()
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case IntValue:
		return strconv.FormatInt(val.Val, 10)
	case FloatValue:
		if val.IsNaN() || val.IsInf() {
			return nil
		}
		return strconv.FormatFloat(val.Val, 'g', -1, 64)
	default:
		return nil
	}
}

func serializeBoolean(v Value) any {
	switch val := v.(type) {
	case BoolValue:
		return val.Val
	case IntValue:
		return val.Val != 0
	case FloatValue:
		if val.IsNaN() {
			return nil
		}
		return val.Val != 0
	default:
		return nil
	}
}

func serializeID(v Value) any {
	switch val := v.(type) {
	case StrValue:
		return val.Value()
	case IntValue:
		return strconv.FormatInt(val.Val, 10)
	case FloatValue:
		// Integer-valued floats are acceptable identifiers
		if val.IsNaN() || val.IsInf() || val.Val != math.Trunc(val.Val) {
			return nil
		}
		return strconv.FormatFloat(val.Val, 'f', -1, 64)
	default:
		return nil
	}
}
