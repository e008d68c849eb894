package tuple

import (
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/types"
)

// ErrAttributeNotFound is returned when a named attribute does not
// appear in a schema. Callers that treat a missing attribute as a
// no-match condition rather than a failure test for it with errors.Is.
var ErrAttributeNotFound = errors.New("attribute not found")

// TupleDescription describes the schema of a tuple: an ordered sequence
// of (attribute name, domain) columns. Attribute names are unique.
type TupleDescription struct {
	// Types contains the domain tag of each column in order.
	Types []types.Type
	// FieldNames contains the name of each column in order.
	FieldNames []string
}

// NewTupleDesc creates a new TupleDescription from parallel slices of
// domain tags and attribute names. Both slices are copied.
func NewTupleDesc(fieldTypes []types.Type, fieldNames []string) (*TupleDescription, error) {
	if len(fieldTypes) < 1 {
		return nil, errors.New("must provide at least one field type")
	}
	if len(fieldNames) != len(fieldTypes) {
		return nil, errors.Newf("field names length (%d) must match field types length (%d)",
			len(fieldNames), len(fieldTypes))
	}

	seen := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		if _, dup := seen[name]; dup {
			return nil, errors.Newf("duplicate attribute name %q", name)
		}
		seen[name] = struct{}{}
	}

	typesCopy := make([]types.Type, len(fieldTypes))
	copy(typesCopy, fieldTypes)
	namesCopy := make([]string, len(fieldNames))
	copy(namesCopy, fieldNames)

	return &TupleDescription{
		Types:      typesCopy,
		FieldNames: namesCopy,
	}, nil
}

// NumFields returns the number of columns in this schema.
func (td *TupleDescription) NumFields() int {
	return len(td.Types)
}

// GetFieldName returns the name of the ith column.
func (td *TupleDescription) GetFieldName(i int) (string, error) {
	if i < 0 || i >= len(td.Types) {
		return "", errors.Newf("field index %d out of bounds [0, %d)", i, len(td.Types))
	}
	return td.FieldNames[i], nil
}

// TypeAtIndex returns the domain of the ith column.
func (td *TupleDescription) TypeAtIndex(i int) (types.Type, error) {
	if i < 0 || i >= len(td.Types) {
		return 0, errors.Newf("field index %d out of bounds [0, %d)", i, len(td.Types))
	}
	return td.Types[i], nil
}

// FindFieldIndex locates a column by name. Returns ErrAttributeNotFound
// if the schema has no such column.
func (td *TupleDescription) FindFieldIndex(fieldName string) (int, error) {
	for i, name := range td.FieldNames {
		if name == fieldName {
			return i, nil
		}
	}
	return -1, errors.Wrapf(ErrAttributeNotFound, "column %s", fieldName)
}

// Equals reports whether two schemas have the same columns in the same
// order, by both domain and name.
func (td *TupleDescription) Equals(other *TupleDescription) bool {
	if other == nil || len(td.Types) != len(other.Types) {
		return false
	}
	for i, fieldType := range td.Types {
		if fieldType != other.Types[i] || td.FieldNames[i] != other.FieldNames[i] {
			return false
		}
	}
	return true
}

// DomainsEqual reports whether two schemas have the same arity and
// positionally identical domains. Names are not compared: this is the
// compatibility requirement of union and minus.
func (td *TupleDescription) DomainsEqual(other *TupleDescription) bool {
	if other == nil || len(td.Types) != len(other.Types) {
		return false
	}
	for i, fieldType := range td.Types {
		if fieldType != other.Types[i] {
			return false
		}
	}
	return true
}

// Project builds the schema of a projection: the columns at the given
// positions, in the given order.
func (td *TupleDescription) Project(indices []int) (*TupleDescription, error) {
	projTypes := make([]types.Type, len(indices))
	projNames := make([]string, len(indices))
	for j, i := range indices {
		if i < 0 || i >= len(td.Types) {
			return nil, errors.Newf("field index %d out of bounds [0, %d)", i, len(td.Types))
		}
		projTypes[j] = td.Types[i]
		projNames[j] = td.FieldNames[i]
	}
	return NewTupleDesc(projTypes, projNames)
}

// String returns a string representation of this schema.
// Format: "name1:TYPE1,name2:TYPE2,..."
func (td *TupleDescription) String() string {
	parts := make([]string, len(td.Types))
	for i, fieldType := range td.Types {
		parts[i] = td.FieldNames[i] + ":" + fieldType.String()
	}
	return strings.Join(parts, ",")
}

// Combine merges two schemas into one: all columns of td1 followed by
// all columns of td2. Name collisions are the caller's concern; join
// operators disambiguate before combining.
func Combine(td1, td2 *TupleDescription) *TupleDescription {
	if td1 == nil {
		return td2
	}
	if td2 == nil {
		return td1
	}

	newTypes := make([]types.Type, 0, len(td1.Types)+len(td2.Types))
	newTypes = append(newTypes, td1.Types...)
	newTypes = append(newTypes, td2.Types...)

	newNames := make([]string, 0, len(newTypes))
	newNames = append(newNames, td1.FieldNames...)
	newNames = append(newNames, td2.FieldNames...)

	return &TupleDescription{Types: newTypes, FieldNames: newNames}
}
