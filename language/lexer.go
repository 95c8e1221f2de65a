package language

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Lexer tokenizes literal source text. Commas count as whitespace and
// comments run from '#' to end of line.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
}

// NewLexer creates a new Lexer instance
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NUL
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipIgnored skips whitespace, commas, and comments
func (l *Lexer) skipIgnored() {
	for {
		switch l.ch {
		case ' ', '\t', '\n', '\r', ',':
			l.readChar()
		case '#':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipIgnored()

	tok := Token{Line: l.line, Column: l.column}

	switch {
	case l.ch == 0:
		tok.Type = TOKEN_EOF
	case l.ch == '[':
		tok.Type = TOKEN_LBRACKET
		tok.Value = "["
		l.readChar()
	case l.ch == ']':
		tok.Type = TOKEN_RBRACKET
		tok.Value = "]"
		l.readChar()
	case l.ch == '{':
		tok.Type = TOKEN_LBRACE
		tok.Value = "{"
		l.readChar()
	case l.ch == '}':
		tok.Type = TOKEN_RBRACE
		tok.Value = "}"
		l.readChar()
	case l.ch == ':':
		tok.Type = TOKEN_COLON
		tok.Value = ":"
		l.readChar()
	case l.ch == '"':
		return l.readString(tok)
	case l.ch == '-' || isDigit(l.ch):
		return l.readNumber(tok)
	case isNameStart(l.ch):
		start := l.position
		for isNameStart(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		tok.Type = TOKEN_NAME
		tok.Value = l.input[start:l.position]
	default:
		tok.Type = TOKEN_ILLEGAL
		tok.Value = string(l.ch)
		l.readChar()
	}

	return tok
}

// readNumber reads an integer or float token. The grammar forbids
// leading zeros and a bare '-'.
func (l *Lexer) readNumber(tok Token) Token {
	start := l.position
	isFloat := false

	if l.ch == '-' {
		l.readChar()
	}
	if !isDigit(l.ch) {
		tok.Type = TOKEN_ILLEGAL
		tok.Value = l.input[start:l.position]
		return tok
	}
	if l.ch == '0' && isDigit(l.peekChar()) {
		tok.Type = TOKEN_ILLEGAL
		tok.Value = "0" + string(l.peekChar())
		return tok
	}
	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		isFloat = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if !isDigit(l.ch) {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = l.input[start:l.position]
			return tok
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if isFloat {
		tok.Type = TOKEN_FLOAT
	} else {
		tok.Type = TOKEN_INT
	}
	tok.Value = l.input[start:l.position]
	return tok
}

// readString reads a quoted string token and unescapes its contents
func (l *Lexer) readString(tok Token) Token {
	var sb strings.Builder
	l.readChar() // consume opening quote

	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			tok.Type = TOKEN_ILLEGAL
			tok.Value = "unterminated string"
			return tok
		}
		if l.ch != '\\' {
			sb.WriteByte(l.ch)
			l.readChar()
			continue
		}

		l.readChar()
		switch l.ch {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			r, err := l.readUnicodeEscape()
			if err != nil {
				tok.Type = TOKEN_ILLEGAL
				tok.Value = err.Error()
				return tok
			}
			sb.WriteRune(r)
			continue // readUnicodeEscape already advanced
		default:
			tok.Type = TOKEN_ILLEGAL
			tok.Value = fmt.Sprintf("invalid escape \\%c", l.ch)
			return tok
		}
		l.readChar()
	}

	l.readChar() // consume closing quote
	tok.Type = TOKEN_STRING
	tok.Value = sb.String()
	return tok
}

// readUnicodeEscape reads the four hex digits of a \uXXXX escape,
// combining surrogate pairs. Called with l.ch == 'u'; leaves l.ch on
// the first character after the escape.
func (l *Lexer) readUnicodeEscape() (rune, error) {
	r, err := l.readHex4()
	if err != nil {
		return 0, err
	}
	if utf16.IsSurrogate(r) {
		if l.ch == '\\' && l.peekChar() == 'u' {
			l.readChar() // '\'
			r2, err := l.readHex4()
			if err != nil {
				return 0, err
			}
			if combined := utf16.DecodeRune(r, r2); combined != utf8.RuneError {
				return combined, nil
			}
		}
		return utf8.RuneError, nil
	}
	return r, nil
}

// readHex4 consumes 'u' plus four hex digits and returns the rune
func (l *Lexer) readHex4() (rune, error) {
	l.readChar() // consume 'u'
	var r rune
	for i := 0; i < 4; i++ {
		d, ok := hexDigit(l.ch)
		if !ok {
			return 0, fmt.Errorf("invalid unicode escape")
		}
		r = r<<4 | d
		l.readChar()
	}
	return r, nil
}

func hexDigit(c byte) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return rune(c - '0'), true
	case c >= 'a' && c <= 'f':
		return rune(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return rune(c-'A') + 10, true
	default:
		return 0, false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
