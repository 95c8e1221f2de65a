package types

import (
	"fmt"
	"strings"
)

// Registry maps type names to named types. A new registry is seeded
// with the built-in scalars.
type Registry struct {
	named map[string]NamedType
}

// NewRegistry creates a registry containing the built-in scalars
func NewRegistry() *Registry {
	r := &Registry{named: make(map[string]NamedType)}
	for _, t := range []NamedType{Int, Float, String, Boolean, ID} {
		r.named[t.TypeName()] = t
	}
	return r
}

// Register adds a named type. Re-registering a name is an error.
func (r *Registry) Register(t NamedType) error {
	name := t.TypeName()
	if name == "" {
		return fmt.Errorf("cannot register a type with an empty name")
	}
	if _, exists := r.named[name]; exists {
		return fmt.Errorf("type %q is already registered", name)
	}
	r.named[name] = t
	return nil
}

// Lookup returns the named type, if registered
func (r *Registry) Lookup(name string) (Type, bool) {
	t, ok := r.named[name]
	return t, ok
}

// ParseRef parses type notation against the registry: a type name,
// optionally wrapped in list brackets and non-null markers, e.g.
// "Int", "Int!", "[Int]", "[Int!]!", "[[ID]]".
func (r *Registry) ParseRef(ref string) (Type, error) {
	s := strings.TrimSpace(ref)
	if s == "" {
		return nil, fmt.Errorf("empty type reference")
	}
	t, rest, err := r.parseRef(s)
	if err != nil {
		return nil, fmt.Errorf("invalid type reference %q: %w", ref, err)
	}
	if strings.TrimSpace(rest) != "" {
		return nil, fmt.Errorf("invalid type reference %q: trailing %q", ref, rest)
	}
	return t, nil
}

func (r *Registry) parseRef(s string) (Type, string, error) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return nil, "", fmt.Errorf("unexpected end of reference")
	}

	var t Type
	if s[0] == '[' {
		inner, rest, err := r.parseRef(s[1:])
		if err != nil {
			return nil, "", err
		}
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || rest[0] != ']' {
			return nil, "", fmt.Errorf("missing closing ']'")
		}
		t = ListOf(inner)
		s = rest[1:]
	} else {
		i := 0
		for i < len(s) && (s[i] == '_' || isRefLetter(s[i]) || (i > 0 && s[i] >= '0' && s[i] <= '9')) {
			i++
		}
		if i == 0 {
			return nil, "", fmt.Errorf("expected a type name at %q", s)
		}
		name := s[:i]
		named, ok := r.Lookup(name)
		if !ok {
			return nil, "", fmt.Errorf("unknown type name %q", name)
		}
		t = named
		s = s[i:]
	}

	if len(s) > 0 && s[0] == '!' {
		t = NonNull(t)
		s = s[1:]
	}
	return t, s, nil
}

func isRefLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
