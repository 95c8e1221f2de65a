package types

// Kind classifies a runtime value
type Kind int

const (
	KIND_NULL    Kind = 0
	KIND_INVALID Kind = 1
	KIND_BOOL    Kind = 2
	KIND_INT     Kind = 3
	KIND_FLOAT   Kind = 4
	KIND_STR     Kind = 5
	KIND_LIST    Kind = 6
	KIND_MAP     Kind = 7
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KIND_NULL:
		return "NULL"
	case KIND_INVALID:
		return "INVALID"
	case KIND_BOOL:
		return "BOOL"
	case KIND_INT:
		return "INT"
	case KIND_FLOAT:
		return "FLOAT"
	case KIND_STR:
		return "STR"
	case KIND_LIST:
		return "LIST"
	case KIND_MAP:
		return "MAP"
	default:
		return "UNKNOWN"
	}
}
