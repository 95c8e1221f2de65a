package types

// Value is the interface all runtime values implement
type Value interface {
	Kind() Kind
	String() string   // Debug representation
	Equal(Value) bool // Deep equality
}

// IsInvalid reports whether v is the unrepresentable sentinel: a nil
// value, the explicit InvalidValue, or a NaN float. An explicit null is
// NOT invalid; the two are handled differently everywhere.
func IsInvalid(v Value) bool {
	if v == nil {
		return true
	}
	if _, ok := v.(InvalidValue); ok {
		return true
	}
	if f, ok := v.(FloatValue); ok {
		return f.IsNaN()
	}
	return false
}
