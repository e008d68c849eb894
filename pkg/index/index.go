// Package index defines the associative-index capability used by
// relations: a mapping from a tuple's composite key to the tuple
// itself. Relations depend only on the Index interface, so backends
// are interchangeable without touching algebra code.
package index

import (
	"github.com/cockroachdb/errors"

	"relalg/pkg/tuple"
)

// Entry is one key-to-tuple mapping held by an index.
type Entry struct {
	Key   CompositeKey
	Value *tuple.Tuple
}

// Index is the capability interface every backend implements.
type Index interface {
	// Put inserts or overwrites the mapping for key and returns the
	// previously mapped tuple, or nil if the key was absent.
	Put(key CompositeKey, value *tuple.Tuple) *tuple.Tuple

	// Get returns the tuple mapped to key. A miss is not an error:
	// it returns (nil, false).
	Get(key CompositeKey) (*tuple.Tuple, bool)

	// All returns every entry currently held. The iteration order is
	// backend-specific.
	All() []Entry

	// Len returns the number of live keys.
	Len() int
}

// Kind selects an index strategy at relation construction time.
type Kind int

const (
	// KindNone disables indexing; point lookups fall back to scans.
	KindNone Kind = iota
	// KindOrdered is a tree-style index kept in lexicographic key order.
	KindOrdered
	// KindHash is a plain chained hash index with a fixed bucket count.
	KindHash
	// KindLinear is the linear-hashing dynamic index.
	KindLinear
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOrdered:
		return "ordered"
	case KindHash:
		return "hash"
	case KindLinear:
		return "linhash"
	default:
		return "unknown"
	}
}

// ParseKind converts a strategy name into a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "none", "":
		return KindNone, nil
	case "ordered", "tree":
		return KindOrdered, nil
	case "hash":
		return KindHash, nil
	case "linhash", "linear":
		return KindLinear, nil
	default:
		return 0, errors.Newf("unknown index kind %q", name)
	}
}
