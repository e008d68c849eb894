package tuple

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/types"
)

// Tuple represents one row of typed attribute values. A tuple is
// mutable while it is being assembled and treated as immutable once it
// has been inserted into a relation, so derived relations may share
// field values by reference.
type Tuple struct {
	TupleDesc *TupleDescription // Schema of this tuple
	fields    []types.Field     // The actual field values
}

// NewTuple creates an empty tuple with the given schema.
func NewTuple(td *TupleDescription) *Tuple {
	return &Tuple{
		TupleDesc: td,
		fields:    make([]types.Field, td.NumFields()),
	}
}

// FromFields assembles a tuple from a complete ordered value list,
// domain-checking every column.
func FromFields(td *TupleDescription, fields ...types.Field) (*Tuple, error) {
	if len(fields) != td.NumFields() {
		return nil, errors.Newf("wrong arity: schema has %d columns, got %d values",
			td.NumFields(), len(fields))
	}
	t := NewTuple(td)
	for i, f := range fields {
		if err := t.SetField(i, f); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// SetField places a field value in column i, checking the domain.
func (t *Tuple) SetField(i int, field types.Field) error {
	if i < 0 || i >= len(t.fields) {
		return errors.Newf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	if field == nil {
		return errors.Newf("field %d is nil", i)
	}

	expectedType, _ := t.TupleDesc.TypeAtIndex(i)
	if field.Type() != expectedType {
		return errors.Newf("field type mismatch at column %d: expected %v, got %v",
			i, expectedType, field.Type())
	}

	t.fields[i] = field
	return nil
}

// GetField returns the value of the ith column.
func (t *Tuple) GetField(i int) (types.Field, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, errors.Newf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// Equals reports full-value equality: same arity and element-wise equal
// fields. Used by minus and by duplicate elimination.
func (t *Tuple) Equals(other *Tuple) bool {
	if other == nil || len(t.fields) != len(other.fields) {
		return false
	}
	for i, f := range t.fields {
		if f == nil || other.fields[i] == nil {
			if f != other.fields[i] {
				return false
			}
			continue
		}
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Fingerprint returns a canonical byte encoding of the tuple's values,
// usable as a map key for duplicate elimination.
func (t *Tuple) Fingerprint() string {
	var buf bytes.Buffer
	for _, f := range t.fields {
		if f == nil {
			buf.WriteByte(0)
			continue
		}
		buf.WriteByte(1)
		// Serialization of in-memory fields cannot fail.
		_ = f.Serialize(&buf)
	}
	return buf.String()
}

// Project builds a narrower tuple holding the columns at the given
// positions, in the given order, under the projected schema.
func (t *Tuple) Project(td *TupleDescription, indices []int) (*Tuple, error) {
	if len(indices) != td.NumFields() {
		return nil, errors.Newf("projection schema has %d columns, got %d positions",
			td.NumFields(), len(indices))
	}
	projected := NewTuple(td)
	for j, i := range indices {
		field, err := t.GetField(i)
		if err != nil {
			return nil, err
		}
		if err := projected.SetField(j, field); err != nil {
			return nil, err
		}
	}
	return projected, nil
}

// CombineTuples concatenates two tuples under the given combined
// schema. Used by joins, which compute the output schema first.
func CombineTuples(td *TupleDescription, t1, t2 *Tuple) (*Tuple, error) {
	if t1 == nil || t2 == nil {
		return nil, errors.New("cannot combine nil tuples")
	}
	if td.NumFields() != len(t1.fields)+len(t2.fields) {
		return nil, errors.Newf("combined schema has %d columns, tuples have %d",
			td.NumFields(), len(t1.fields)+len(t2.fields))
	}

	combined := NewTuple(td)
	for i, f := range t1.fields {
		if err := combined.SetField(i, f); err != nil {
			return nil, err
		}
	}
	for i, f := range t2.fields {
		if err := combined.SetField(len(t1.fields)+i, f); err != nil {
			return nil, err
		}
	}
	return combined, nil
}

// String returns a tab-separated rendering of the tuple's values.
func (t *Tuple) String() string {
	parts := make([]string, len(t.fields))
	for i, field := range t.fields {
		if field != nil {
			parts[i] = field.String()
		} else {
			parts[i] = "null"
		}
	}
	return strings.Join(parts, "\t")
}
