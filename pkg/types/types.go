package types

// Type is the domain tag for an attribute's value type. Every column of
// a schema carries one, and every Field reports the tag it belongs to.
type Type int

const (
	// IntType is a 64-bit signed integer domain.
	IntType Type = iota
	// Int32Type is a 32-bit signed integer domain.
	Int32Type
	// FloatType is a 64-bit IEEE 754 floating-point domain.
	FloatType
	// Float32Type is a 32-bit IEEE 754 floating-point domain.
	Float32Type
	// CharType is a single Unicode code point domain.
	CharType
	// StringType is a variable-length string domain.
	StringType
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case IntType:
		return "INT"
	case Int32Type:
		return "INT32"
	case FloatType:
		return "FLOAT"
	case Float32Type:
		return "FLOAT32"
	case CharType:
		return "CHAR"
	case StringType:
		return "STRING"
	default:
		return "UNKNOWN"
	}
}

// ParseType converts a domain name, as written in DDL-style schema
// declarations, into a Type tag.
func ParseType(name string) (Type, bool) {
	switch name {
	case "Integer", "Long", "INT":
		return IntType, true
	case "Short", "Byte", "INT32":
		return Int32Type, true
	case "Double", "FLOAT":
		return FloatType, true
	case "Float", "FLOAT32":
		return Float32Type, true
	case "Character", "CHAR":
		return CharType, true
	case "String", "STRING":
		return StringType, true
	default:
		return 0, false
	}
}
