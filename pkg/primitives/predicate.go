package primitives

import "github.com/cockroachdb/errors"

// Predicate identifies a comparison operator applied between two field
// values or between a field value and a literal.
type Predicate int

const (
	Equals Predicate = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

func (p Predicate) String() string {
	switch p {
	case Equals:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return "UNKNOWN"
	}
}

// ParsePredicate converts an operator token into a Predicate.
// Both "=" and "==" denote equality: select conditions use the doubled
// form while theta-join conditions use the single form.
func ParsePredicate(op string) (Predicate, error) {
	switch op {
	case "=", "==":
		return Equals, nil
	case "!=":
		return NotEqual, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessThanOrEqual, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterThanOrEqual, nil
	default:
		return 0, errors.Newf("unknown comparison operator %q", op)
	}
}

// CompareOrdered applies a predicate to the result of a three-way
// comparison (negative, zero, positive).
func CompareOrdered(cmp int, op Predicate) bool {
	switch op {
	case Equals:
		return cmp == 0
	case NotEqual:
		return cmp != 0
	case LessThan:
		return cmp < 0
	case LessThanOrEqual:
		return cmp <= 0
	case GreaterThan:
		return cmp > 0
	case GreaterThanOrEqual:
		return cmp >= 0
	default:
		return false
	}
}
