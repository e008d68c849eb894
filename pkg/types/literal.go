package types

import (
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ParseLiteral converts a textual literal into a field of the given
// domain. Select conditions compare column values against literals, so
// the literal is converted into the column's domain before comparison
// rather than compared as text.
func ParseLiteral(fieldType Type, text string) (Field, error) {
	switch fieldType {
	case IntType:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "literal %q is not a valid INT", text)
		}
		return NewIntField(v), nil

	case Int32Type:
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "literal %q is not a valid INT32", text)
		}
		return NewInt32Field(int32(v)), nil

	case FloatType:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "literal %q is not a valid FLOAT", text)
		}
		return NewFloat64Field(v), nil

	case Float32Type:
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "literal %q is not a valid FLOAT32", text)
		}
		return NewFloat32Field(float32(v)), nil

	case CharType:
		if text == "" {
			return nil, errors.Newf("empty literal is not a valid CHAR")
		}
		r, _ := utf8.DecodeRuneInString(text)
		return NewCharField(r), nil

	case StringType:
		return NewStringField(text), nil

	default:
		return nil, errors.Newf("unsupported field type: %v", fieldType)
	}
}
