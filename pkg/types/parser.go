package types

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/cockroachdb/errors"
)

// ParseField reads one field in its binary snapshot encoding, based on
// the column's domain tag. It is the inverse of Field.Serialize.
func ParseField(r io.Reader, fieldType Type) (Field, error) {
	switch fieldType {
	case IntType:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return NewIntField(int64(binary.BigEndian.Uint64(buf[:]))), nil

	case Int32Type:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return NewInt32Field(int32(binary.BigEndian.Uint32(buf[:]))), nil

	case FloatType:
		var buf [8]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return NewFloat64Field(math.Float64frombits(binary.BigEndian.Uint64(buf[:]))), nil

	case Float32Type:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return NewFloat32Field(math.Float32frombits(binary.BigEndian.Uint32(buf[:]))), nil

	case CharType:
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		return NewCharField(rune(binary.BigEndian.Uint32(buf[:]))), nil

	case StringType:
		var lenBuf [4]byte
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return nil, err
		}
		strBytes := make([]byte, binary.BigEndian.Uint32(lenBuf[:]))
		if _, err := io.ReadFull(r, strBytes); err != nil {
			return nil, err
		}
		return NewStringField(string(strBytes)), nil

	default:
		return nil, errors.Newf("unsupported field type: %v", fieldType)
	}
}
