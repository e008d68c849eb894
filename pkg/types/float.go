package types

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"relalg/pkg/primitives"
)

// Float64Field represents a 64-bit floating-point field.
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(compareFloat64(f.Value, otherField.Value), op)
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float64Field) Hash() primitives.HashCode {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f.Value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (f *Float64Field) Type() Type {
	return FloatType
}

func (f *Float64Field) Serialize(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(f.Value))
	_, err := w.Write(buf[:])
	return err
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Float32Field represents a 32-bit floating-point field.
type Float32Field struct {
	Value float32
}

func NewFloat32Field(value float32) *Float32Field {
	return &Float32Field{Value: value}
}

func (f *Float32Field) Compare(op primitives.Predicate, other Field) bool {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false
	}
	return primitives.CompareOrdered(compareFloat64(float64(f.Value), float64(otherField.Value)), op)
}

func (f *Float32Field) Equals(other Field) bool {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float32Field) Hash() primitives.HashCode {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(f.Value))
	return primitives.HashCode(xxhash.Sum64(buf[:]))
}

func (f *Float32Field) Type() Type {
	return Float32Type
}

func (f *Float32Field) Serialize(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(f.Value))
	_, err := w.Write(buf[:])
	return err
}

func (f *Float32Field) String() string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}

func compareFloat64(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
