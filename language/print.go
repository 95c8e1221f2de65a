package language

import (
	"fmt"
	"strings"
)

// Print renders a value node back to literal source text. List
// elements that are nil (positions whose conversion produced no
// literal) are skipped in the text.
func Print(v Value) string {
	var sb strings.Builder
	printValue(&sb, v)
	return sb.String()
}

func printValue(sb *strings.Builder, v Value) {
	switch n := v.(type) {
	case *NullValue:
		sb.WriteString("null")

	case *BooleanValue:
		if n.Value {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}

	case *IntValue:
		sb.WriteString(n.Raw)

	case *FloatValue:
		sb.WriteString(n.Raw)

	case *StringValue:
		printString(sb, n.Value)

	case *EnumValue:
		sb.WriteString(n.Value)

	case *ListValue:
		sb.WriteByte('[')
		first := true
		for _, item := range n.Values {
			if item == nil {
				continue
			}
			if !first {
				sb.WriteString(", ")
			}
			first = false
			printValue(sb, item)
		}
		sb.WriteByte(']')

	case *ObjectValue:
		sb.WriteByte('{')
		for i, field := range n.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name)
			sb.WriteString(": ")
			printValue(sb, field.Value)
		}
		sb.WriteByte('}')
	}
}

// printString writes a quoted string literal with escapes
func printString(sb *strings.Builder, s string) {
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		case '\b':
			sb.WriteString("\\b")
		case '\f':
			sb.WriteString("\\f")
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, "\\u%04X", r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
}
