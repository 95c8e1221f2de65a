package types

// EnumValue is a single declared member of an enum type. Value is the
// internal runtime representation; it defaults to the member name as a
// string when not set explicitly.
type EnumValue struct {
	Name  string
	Value Value
}

// EnumType is a leaf type whose values form a finite symbol set
type EnumType struct {
	Name   string
	Values []*EnumValue
}

func (t *EnumType) String() string   { return t.Name }
func (t *EnumType) TypeName() string { return t.Name }
func (t *EnumType) inputType()       {}

// NewEnum declares an enum whose members are represented internally by
// their own names
func NewEnum(name string, names ...string) *EnumType {
	e := &EnumType{Name: name}
	for _, n := range names {
		e.Values = append(e.Values, &EnumValue{Name: n, Value: NewStr(n)})
	}
	return e
}

// Serialize maps an internal value to the name of the matching enum
// member, or nil when no member matches
func (t *EnumType) Serialize(v Value) any {
	if v == nil {
		return nil
	}
	for _, ev := range t.Values {
		if ev.Value != nil && ev.Value.Equal(v) {
			return ev.Name
		}
	}
	return nil
}
