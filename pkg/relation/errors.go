package relation

import (
	"github.com/cockroachdb/errors"

	"relalg/pkg/tuple"
)

var (
	// ErrIncompatibleSchema is returned by union and minus when the
	// two relations differ in arity or in a positional domain.
	ErrIncompatibleSchema = errors.New("incompatible schemas")

	// ErrMalformedCondition is returned when a condition string does
	// not parse into the expected "attr op operand" token shape. It
	// signals a caller contract violation, not a data condition.
	ErrMalformedCondition = errors.New("malformed condition")

	// ErrAttributeNotFound is returned when a named attribute does
	// not appear in the relation's schema.
	ErrAttributeNotFound = tuple.ErrAttributeNotFound
)
