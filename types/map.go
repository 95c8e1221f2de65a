package types

import "strings"

// MapPair is a single name/value entry of a mapping
type MapPair struct {
	Name  string
	Value Value
}

// MapValue represents a keyed mapping. Entries keep their insertion
// order, with a by-name index for lookup.
type MapValue struct {
	pairs []MapPair
	index map[string]int
}

// NewMap creates a new map value from ordered pairs. A repeated name
// keeps the last value but the first position.
func NewMap(pairs []MapPair) MapValue {
	m := MapValue{index: make(map[string]int, len(pairs))}
	for _, p := range pairs {
		if i, ok := m.index[p.Name]; ok {
			m.pairs[i].Value = p.Value
			continue
		}
		m.index[p.Name] = len(m.pairs)
		m.pairs = append(m.pairs, p)
	}
	return m
}

// Kind returns the kind for mappings
func (m MapValue) Kind() Kind {
	return KIND_MAP
}

// Len returns the number of entries
func (m MapValue) Len() int {
	return len(m.pairs)
}

// Get returns the value for a name
func (m MapValue) Get(name string) (Value, bool) {
	i, ok := m.index[name]
	if !ok {
		return nil, false
	}
	return m.pairs[i].Value, true
}

// Has reports whether the name is present, even when its value is nil
func (m MapValue) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Pairs returns the entries in insertion order
func (m MapValue) Pairs() []MapPair {
	return m.pairs
}

// String returns the debug representation
func (m MapValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		if p.Value == nil {
			sb.WriteString("<invalid>")
			continue
		}
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Equal checks deep equality (entry order does not matter)
func (m MapValue) Equal(other Value) bool {
	otherMap, ok := other.(MapValue)
	if !ok {
		return false
	}
	if len(m.pairs) != len(otherMap.pairs) {
		return false
	}
	for _, p := range m.pairs {
		o, ok := otherMap.Get(p.Name)
		if !ok {
			return false
		}
		if p.Value == nil || o == nil {
			if (p.Value == nil) != (o == nil) {
				return false
			}
			continue
		}
		if !p.Value.Equal(o) {
			return false
		}
	}
	return true
}
