package conformance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gql/language"
	"gql/types"
)

// Runner executes the conversion tests of one suite against a registry
// built from the suite's type declarations
type Runner struct {
	registry *types.Registry
}

// NewRunner builds a runner for a suite, registering its declared
// enums and input objects on top of the built-in scalars. Input object
// field types may refer to any declared type, so declarations are
// registered in two passes.
func NewRunner(suite TestSuite) (*Runner, error) {
	reg := types.NewRegistry()

	// First pass: enums and empty input object shells, so field type
	// references can resolve regardless of declaration order
	objects := make(map[string]*types.InputObjectType)
	for _, decl := range suite.Types {
		switch {
		case decl.Enum != "":
			if err := reg.Register(types.NewEnum(decl.Enum, decl.Values...)); err != nil {
				return nil, err
			}
		case decl.Input != "":
			obj := &types.InputObjectType{Name: decl.Input}
			if err := reg.Register(obj); err != nil {
				return nil, err
			}
			objects[decl.Input] = obj
		default:
			return nil, fmt.Errorf("type declaration needs either enum or input")
		}
	}

	// Second pass: resolve input object field types
	for _, decl := range suite.Types {
		if decl.Input == "" {
			continue
		}
		obj := objects[decl.Input]
		for _, f := range decl.Fields {
			ft, err := reg.ParseRef(f.Type)
			if err != nil {
				return nil, fmt.Errorf("input %s, field %s: %w", decl.Input, f.Name, err)
			}
			obj.Fields = append(obj.Fields, &types.InputField{Name: f.Name, Type: ft})
		}
	}

	return &Runner{registry: reg}, nil
}

// Registry returns the suite's type registry
func (r *Runner) Registry() *types.Registry {
	return r.registry
}

// Run executes one test case and returns a descriptive error when the
// outcome does not match the expectation
func (r *Runner) Run(tc TestCase) error {
	typ, err := r.registry.ParseRef(tc.Type)
	if err != nil {
		return fmt.Errorf("type: %w", err)
	}

	value, err := r.testValue(tc)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}

	node, convErr := language.FromValue(value, typ)

	if tc.Expect.Error != "" {
		if convErr == nil {
			return fmt.Errorf("expected error containing %q, got none", tc.Expect.Error)
		}
		if !strings.Contains(convErr.Error(), tc.Expect.Error) {
			return fmt.Errorf("expected error containing %q, got %q", tc.Expect.Error, convErr)
		}
		return nil
	}
	if convErr != nil {
		return fmt.Errorf("unexpected error: %w", convErr)
	}

	if tc.Expect.Absent {
		if node != nil {
			return fmt.Errorf("expected absent, got literal %q", language.Print(node))
		}
		return nil
	}

	if tc.Expect.Literal == nil {
		return fmt.Errorf("expectation needs literal, absent, or error")
	}
	if node == nil {
		return fmt.Errorf("expected literal %q, got absent", *tc.Expect.Literal)
	}
	if got := language.Print(node); got != *tc.Expect.Literal {
		return fmt.Errorf("expected literal %q, got %q", *tc.Expect.Literal, got)
	}
	return nil
}

// testValue builds the runtime value a test case feeds the converter
func (r *Runner) testValue(tc TestCase) (types.Value, error) {
	switch {
	case tc.Invalid:
		return types.InvalidValue{}, nil
	case tc.ValueJSON != "":
		return types.DecodeJSON([]byte(tc.ValueJSON))
	case !tc.Value.IsZero():
		return yamlValue(&tc.Value)
	default:
		return nil, fmt.Errorf("test case needs value, value_json, or invalid")
	}
}

// yamlValue converts a YAML node into a runtime value
func yamlValue(node *yaml.Node) (types.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("expected a single YAML document value")
		}
		return yamlValue(node.Content[0])

	case yaml.AliasNode:
		return yamlValue(node.Alias)

	case yaml.ScalarNode:
		return yamlScalar(node)

	case yaml.SequenceNode:
		elements := make([]types.Value, 0, len(node.Content))
		for _, c := range node.Content {
			v, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			elements = append(elements, v)
		}
		return types.NewList(elements), nil

	case yaml.MappingNode:
		var pairs []types.MapPair
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: non-scalar mapping key", key.Line)
			}
			v, err := yamlValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, types.MapPair{Name: key.Value, Value: v})
		}
		return types.NewMap(pairs), nil

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind", node.Line)
	}
}

// yamlScalar converts a scalar YAML node by its resolved tag
func yamlScalar(node *yaml.Node) (types.Value, error) {
	switch node.Tag {
	case "!!null":
		return types.NullValue{}, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, err
		}
		return types.NewBool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return types.NewInt(i), nil
	case "!!float":
		switch strings.ToLower(node.Value) {
		case ".nan":
			return types.NewFloat(math.NaN()), nil
		case ".inf", "+.inf":
			return types.NewFloat(math.Inf(1)), nil
		case "-.inf":
			return types.NewFloat(math.Inf(-1)), nil
		}
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return types.NewFloat(f), nil
	case "!!str", "":
		return types.NewStr(node.Value), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML tag %s", node.Line, node.Tag)
	}
}
