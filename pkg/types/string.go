package types

import (
	"encoding/binary"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"

	"relalg/pkg/primitives"
)

// StringField represents a variable-length string field. Strings are
// serialized length-prefixed; the engine does not page tuples to disk,
// so no fixed-size padding is applied.
type StringField struct {
	Value string
}

func NewStringField(value string) *StringField {
	return &StringField{Value: value}
}

// Compare performs a lexicographic comparison between this field and
// another string field.
func (s *StringField) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(strings.Compare(s.Value, otherField.Value), op)
}

func (s *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return s.Value == otherField.Value
}

func (s *StringField) Hash() primitives.HashCode {
	return primitives.HashCode(xxhash.Sum64String(s.Value))
}

func (s *StringField) Type() Type {
	return StringType
}

// Serialize writes the string as a 4-byte big-endian length followed by
// the raw bytes.
func (s *StringField) Serialize(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(len(s.Value)))
	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	_, err := io.WriteString(w, s.Value)
	return err
}

func (s *StringField) String() string {
	return s.Value
}
