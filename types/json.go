package types

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
)

// DecodeJSON decodes a JSON document into a runtime value. Object key
// order is preserved by walking the token stream instead of decoding
// into a Go map, and numbers without a fraction or exponent become
// integers rather than floats.
func DecodeJSON(data []byte) (Value, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *gojson.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of JSON input")
		}
		return nil, err
	}

	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '[':
			return decodeList(dec)
		case '{':
			return decodeMap(dec)
		default:
			return nil, fmt.Errorf("unexpected %q in JSON input", t.String())
		}
	case bool:
		return NewBool(t), nil
	case gojson.Number:
		return decodeNumber(t)
	case string:
		return NewStr(t), nil
	case nil:
		return NullValue{}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func decodeList(dec *gojson.Decoder) (Value, error) {
	elements := []Value{}
	for dec.More() {
		e, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	// consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewList(elements), nil
}

func decodeMap(dec *gojson.Decoder) (Value, error) {
	var pairs []MapPair
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected JSON object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, MapPair{Name: key, Value: v})
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return NewMap(pairs), nil
}

func decodeNumber(n gojson.Number) (Value, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return NewInt(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("invalid JSON number %q", n.String())
	}
	return NewFloat(f), nil
}
