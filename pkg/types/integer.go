package types

import (
	"encoding/binary"
	"io"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"relalg/pkg/primitives"
)

// IntField represents a 64-bit signed integer field.
type IntField struct {
	Value int64
}

func NewIntField(value int64) *IntField {
	return &IntField{Value: value}
}

func (f *IntField) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*IntField)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(compareInt64(f.Value, otherField.Value), op)
}

func (f *IntField) Equals(other Field) bool {
	otherField, ok := other.(*IntField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *IntField) Hash() primitives.HashCode {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(f.Value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (f *IntField) Type() Type {
	return IntType
}

func (f *IntField) Serialize(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(f.Value))
	_, err := w.Write(buf[:])
	return err
}

func (f *IntField) String() string {
	return strconv.FormatInt(f.Value, 10)
}

// Int32Field represents a 32-bit signed integer field.
type Int32Field struct {
	Value int32
}

func NewInt32Field(value int32) *Int32Field {
	return &Int32Field{Value: value}
}

func (f *Int32Field) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(compareInt64(int64(f.Value), int64(otherField.Value)), op)
}

func (f *Int32Field) Equals(other Field) bool {
	otherField, ok := other.(*Int32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Int32Field) Hash() primitives.HashCode {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f.Value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (f *Int32Field) Type() Type {
	return Int32Type
}

func (f *Int32Field) Serialize(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(f.Value))
	_, err := w.Write(buf[:])
	return err
}

func (f *Int32Field) String() string {
	return strconv.FormatInt(int64(f.Value), 10)
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
