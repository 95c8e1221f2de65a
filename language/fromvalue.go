package language

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gql/types"
)

// Conversion failures that indicate a broken schema or serializer, not
// a value that merely has no literal form
var (
	ErrCannotConvert = errors.New("cannot convert serialized value to a literal")
	ErrUnknownType   = errors.New("unknown type")
)

// Integer literal grammar: optional sign, no leading zeros
var intLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// FromValue produces a literal AST node for a runtime value, guided by
// the expected input type. The type, not the value, decides which node
// variant is produced at each level.
//
// A (nil, nil) return means no literal can or should be produced at
// this position and the caller must omit it. That covers the invalid
// sentinel, values an input object or leaf cannot represent, and a
// non-null position resolving to an explicit null. An error is
// returned only when a leaf serializes to something that is not a
// bool, int64, float64, or string, or when the type descriptor has an
// unrecognized shape.
func FromValue(v types.Value, t types.Type) (Value, error) {
	if nn, ok := t.(*types.NonNullType); ok {
		node, err := FromValue(v, nn.OfType)
		if err != nil {
			return nil, err
		}
		// A non-null position may never hold an explicit null literal
		if _, isNull := node.(*NullValue); isNull {
			return nil, nil
		}
		return node, nil
	}

	// Only an explicit null becomes a null literal; the invalid
	// sentinel (including NaN) produces nothing.
	if v != nil {
		if _, ok := v.(types.NullValue); ok {
			return &NullValue{}, nil
		}
	}
	if types.IsInvalid(v) {
		return nil, nil
	}

	switch typ := t.(type) {
	case *types.ListType:
		if list, ok := v.(types.ListValue); ok {
			nodes := make([]Value, 0, list.Len())
			for _, item := range list.Elements() {
				node, err := FromValue(item, typ.OfType)
				if err != nil {
					return nil, err
				}
				// An item with no literal stays in the list as a nil
				// entry, preserving positions
				nodes = append(nodes, node)
			}
			return &ListValue{Values: nodes}, nil
		}
		// A single value under a list type converts against the item
		// type and is wrapped: implicit single-value-to-list coercion.
		// An absent item result stays absent rather than producing a
		// one-element list with nothing in it.
		node, err := FromValue(v, typ.OfType)
		if err != nil || node == nil {
			return nil, err
		}
		return &ListValue{Values: []Value{node}}, nil

	case *types.InputObjectType:
		m, ok := v.(types.MapValue)
		if !ok {
			return nil, nil
		}
		var fields []*ObjectField
		// Declaration order of the type, not key order of the value.
		// Fields missing from the value are omitted, never nulled.
		for _, field := range typ.Fields {
			fv, present := m.Get(field.Name)
			if !present {
				continue
			}
			node, err := FromValue(fv, field.Type)
			if err != nil {
				return nil, err
			}
			if node != nil {
				fields = append(fields, &ObjectField{Name: field.Name, Value: node})
			}
		}
		return &ObjectValue{Fields: fields}, nil

	case types.LeafType:
		serialized := typ.Serialize(v)
		if serialized == nil {
			return nil, nil
		}
		// bool is matched before the numeric kinds
		switch s := serialized.(type) {
		case bool:
			return &BooleanValue{Value: s}, nil
		case int64:
			return &IntValue{Raw: strconv.FormatInt(s, 10)}, nil
		case float64:
			return &FloatValue{Raw: formatFloat(s)}, nil
		case string:
			if _, isEnum := typ.(*types.EnumType); isEnum {
				return &EnumValue{Value: s}, nil
			}
			// Numeric-looking identifiers round-trip as Int literals
			if sc, ok := typ.(*types.ScalarType); ok && sc == types.ID && intLiteral.MatchString(s) {
				return &IntValue{Raw: s}, nil
			}
			return &StringValue{Value: s}, nil
		default:
			return nil, fmt.Errorf("%w: %v", ErrCannotConvert, serialized)
		}
	}

	if t == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrUnknownType)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
}

// formatFloat renders the shortest round-tripping decimal text that is
// still a Float literal: a bare integer form gets a ".0" suffix so it
// cannot be read back as an Int
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
