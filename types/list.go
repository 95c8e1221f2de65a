package types

import "strings"

// ListValue represents an ordered sequence of values
type ListValue struct {
	elements []Value
}

// NewList creates a new list value
func NewList(elements []Value) ListValue {
	return ListValue{elements: elements}
}

// Kind returns the kind for lists
func (l ListValue) Kind() Kind {
	return KIND_LIST
}

// Len returns the number of elements
func (l ListValue) Len() int {
	return len(l.elements)
}

// Get returns the element at index (0-based), or nil if out of range
func (l ListValue) Get(i int) Value {
	if i < 0 || i >= len(l.elements) {
		return nil
	}
	return l.elements[i]
}

// Elements returns the underlying elements for iteration
func (l ListValue) Elements() []Value {
	return l.elements
}

// String returns the debug representation
func (l ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range l.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		if e == nil {
			sb.WriteString("<invalid>")
			continue
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal checks deep equality
func (l ListValue) Equal(other Value) bool {
	otherList, ok := other.(ListValue)
	if !ok {
		return false
	}
	if len(l.elements) != len(otherList.elements) {
		return false
	}
	for i, e := range l.elements {
		o := otherList.elements[i]
		if e == nil || o == nil {
			if (e == nil) != (o == nil) {
				return false
			}
			continue
		}
		if !e.Equal(o) {
			return false
		}
	}
	return true
}
