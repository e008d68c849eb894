package types

import (
	"io"

	"relalg/pkg/primitives"
)

// Field is a single typed attribute value inside a tuple.
//
// Implementations are immutable value holders: once a field is placed in
// a tuple it is never modified, so fields may be shared by reference
// between a relation and relations derived from it.
type Field interface {
	// Compare applies the predicate between this field and other.
	// Comparing fields of different domains never matches.
	Compare(op primitives.Predicate, other Field) bool

	// Equals reports element equality with another field.
	Equals(other Field) bool

	// Hash returns a hash code for bucket routing.
	Hash() primitives.HashCode

	// Type returns the domain tag of this field.
	Type() Type

	// Serialize writes the field in its binary snapshot encoding.
	Serialize(w io.Writer) error

	// String renders the value for display.
	String() string
}
