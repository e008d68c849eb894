package index

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"relalg/pkg/primitives"
	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

// CompositeKey is an immutable ordered sequence of the values extracted
// from a tuple's key attributes. It is a lookup handle only: it shares
// field values with the tuple it was extracted from but never owns or
// extends the tuple's lifetime.
//
// Keys from different schemas are never compared to one another; an
// index is always homogeneous to one relation.
type CompositeKey []types.Field

// NewCompositeKey builds a key from an ordered value list.
func NewCompositeKey(fields ...types.Field) CompositeKey {
	return CompositeKey(fields)
}

// ExtractKey projects a tuple onto the columns at the given positions,
// forming its composite key.
func ExtractKey(t *tuple.Tuple, keyCols []int) (CompositeKey, error) {
	key := make(CompositeKey, len(keyCols))
	for j, i := range keyCols {
		field, err := t.GetField(i)
		if err != nil {
			return nil, err
		}
		key[j] = field
	}
	return key, nil
}

// Equals reports element-wise equality with another key.
func (k CompositeKey) Equals(other CompositeKey) bool {
	if len(k) != len(other) {
		return false
	}
	for i, f := range k {
		if !f.Equals(other[i]) {
			return false
		}
	}
	return true
}

// Compare performs a lexicographic comparison using each element's
// natural ordering. It is the ordering used by tree-style indexes.
func (k CompositeKey) Compare(other CompositeKey) int {
	n := min(len(k), len(other))
	for i := 0; i < n; i++ {
		if k[i].Equals(other[i]) {
			continue
		}
		if k[i].Compare(primitives.LessThan, other[i]) {
			return -1
		}
		return 1
	}
	return len(k) - len(other)
}

// Hash returns the key's hash code, computed over the binary encoding
// of every element in order.
func (k CompositeKey) Hash() primitives.HashCode {
	d := xxhash.New()
	for _, f := range k {
		// In-memory serialization cannot fail.
		_ = f.Serialize(d)
	}
	return primitives.HashCode(d.Sum64())
}

// Canonical returns a byte-encoding of the key usable as a map key.
func (k CompositeKey) Canonical() string {
	var b strings.Builder
	for _, f := range k {
		_ = f.Serialize(&b)
	}
	return b.String()
}

// String renders the key for index dumps.
func (k CompositeKey) String() string {
	parts := make([]string, len(k))
	for i, f := range k {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
