package types

import "strconv"

// StrValue represents a string
type StrValue struct {
	val string
}

// NewStr creates a new string value
func NewStr(s string) StrValue {
	return StrValue{val: s}
}

// String returns the debug representation (quoted)
func (s StrValue) String() string {
	return strconv.Quote(s.val)
}

// Kind returns the kind for strings
func (s StrValue) Kind() Kind {
	return KIND_STR
}

// Equal compares two values for equality
func (s StrValue) Equal(other Value) bool {
	if o, ok := other.(StrValue); ok {
		return s.val == o.val
	}
	return false
}

// Value returns the internal string value
func (s StrValue) Value() string {
	return s.val
}
