package language

import "fmt"

// Parser parses literal source text into value nodes
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// NewParser creates a new Parser instance
func NewParser(input string) *Parser {
	p := &Parser{
		lexer: NewLexer(input),
	}
	// Read two tokens to initialize current and peek
	p.nextToken()
	p.nextToken()
	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

// ParseValue parses a complete literal from source text. The whole
// input must be consumed by the literal.
func ParseValue(input string) (Value, error) {
	p := NewParser(input)
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TOKEN_EOF {
		return nil, fmt.Errorf("line %d: unexpected %s after literal", p.current.Line, p.current.Type)
	}
	return v, nil
}

// parseValue parses a single value node at the current token
func (p *Parser) parseValue() (Value, error) {
	pos := Position{Line: p.current.Line, Column: p.current.Column}

	switch p.current.Type {
	case TOKEN_INT:
		v := &IntValue{Pos: pos, Raw: p.current.Value}
		p.nextToken()
		return v, nil

	case TOKEN_FLOAT:
		v := &FloatValue{Pos: pos, Raw: p.current.Value}
		p.nextToken()
		return v, nil

	case TOKEN_STRING:
		v := &StringValue{Pos: pos, Value: p.current.Value}
		p.nextToken()
		return v, nil

	case TOKEN_NAME:
		name := p.current.Value
		p.nextToken()
		switch name {
		case "null":
			return &NullValue{Pos: pos}, nil
		case "true":
			return &BooleanValue{Pos: pos, Value: true}, nil
		case "false":
			return &BooleanValue{Pos: pos, Value: false}, nil
		default:
			return &EnumValue{Pos: pos, Value: name}, nil
		}

	case TOKEN_LBRACKET:
		return p.parseList(pos)

	case TOKEN_LBRACE:
		return p.parseObject(pos)

	case TOKEN_ILLEGAL:
		return nil, fmt.Errorf("line %d: %s", p.current.Line, p.current.Value)

	default:
		return nil, fmt.Errorf("line %d: unexpected %s", p.current.Line, p.current.Type)
	}
}

// parseList parses a list literal: [a, b, c]
func (p *Parser) parseList(pos Position) (Value, error) {
	p.nextToken() // consume '['

	list := &ListValue{Pos: pos, Values: []Value{}}
	for p.current.Type != TOKEN_RBRACKET {
		if p.current.Type == TOKEN_EOF {
			return nil, fmt.Errorf("line %d: unterminated list", pos.Line)
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, v)
	}
	p.nextToken() // consume ']'
	return list, nil
}

// parseObject parses an object literal: {name: value, ...}
func (p *Parser) parseObject(pos Position) (Value, error) {
	p.nextToken() // consume '{'

	obj := &ObjectValue{Pos: pos}
	for p.current.Type != TOKEN_RBRACE {
		if p.current.Type == TOKEN_EOF {
			return nil, fmt.Errorf("line %d: unterminated object", pos.Line)
		}
		if p.current.Type != TOKEN_NAME {
			return nil, fmt.Errorf("line %d: expected field name, got %s", p.current.Line, p.current.Type)
		}
		fieldPos := Position{Line: p.current.Line, Column: p.current.Column}
		name := p.current.Value
		p.nextToken()

		if p.current.Type != TOKEN_COLON {
			return nil, fmt.Errorf("line %d: expected ':' after field name %q", p.current.Line, name)
		}
		p.nextToken()

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Fields = append(obj.Fields, &ObjectField{Pos: fieldPos, Name: name, Value: v})
	}
	p.nextToken() // consume '}'
	return obj, nil
}
