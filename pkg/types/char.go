package types

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"

	"relalg/pkg/primitives"
)

// CharField represents a single Unicode code point field.
type CharField struct {
	Value rune
}

func NewCharField(value rune) *CharField {
	return &CharField{Value: value}
}

func (f *CharField) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*CharField)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(compareInt64(int64(f.Value), int64(otherField.Value)), op)
}

func (f *CharField) Equals(other Field) bool {
	otherField, ok := other.(*CharField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *CharField) Hash() primitives.HashCode {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f.Value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (f *CharField) Type() Type {
	return CharType
}

func (f *CharField) Serialize(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f.Value))
	_, err := w.Write(buf[:])
	return err
}

func (f *CharField) String() string {
	return string(f.Value)
}
