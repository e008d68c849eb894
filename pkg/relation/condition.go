package relation

import (
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/primitives"
	"relalg/pkg/types"
)

// selectCondition is a parsed "attr op literal" select condition. The
// literal stays textual until the attribute's domain is known.
type selectCondition struct {
	attr    string
	op      primitives.Predicate
	literal string
}

// parseSelectCondition splits a condition into the exact three-token
// shape "attr op literal". Anything else is a contract violation and
// fails hard with ErrMalformedCondition.
func parseSelectCondition(condition string) (selectCondition, error) {
	tokens := strings.Fields(condition)
	if len(tokens) != 3 {
		return selectCondition{}, errors.Wrapf(ErrMalformedCondition,
			"expected \"attr op literal\", got %q", condition)
	}

	op, err := primitives.ParsePredicate(tokens[1])
	if err != nil {
		return selectCondition{}, errors.Wrapf(ErrMalformedCondition, "%q", condition)
	}

	return selectCondition{attr: tokens[0], op: op, literal: tokens[2]}, nil
}

// literalAs converts the condition's literal into the given domain. A
// literal that does not parse in the column's domain is a contract
// violation, like a malformed condition.
func (c selectCondition) literalAs(t types.Type) (types.Field, error) {
	f, err := types.ParseLiteral(t, c.literal)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedCondition, "%v", err)
	}
	return f, nil
}

// joinCondition is a parsed "attr1 op attr2" theta-join condition.
type joinCondition struct {
	leftAttr  string
	op        primitives.Predicate
	rightAttr string
}

// parseJoinCondition splits a theta-join condition into the exact
// three-token shape "attr1 op attr2".
func parseJoinCondition(condition string) (joinCondition, error) {
	tokens := strings.Fields(condition)
	if len(tokens) != 3 {
		return joinCondition{}, errors.Wrapf(ErrMalformedCondition,
			"expected \"attr1 op attr2\", got %q", condition)
	}

	op, err := primitives.ParsePredicate(tokens[1])
	if err != nil {
		return joinCondition{}, errors.Wrapf(ErrMalformedCondition, "%q", condition)
	}

	return joinCondition{leftAttr: tokens[0], op: op, rightAttr: tokens[2]}, nil
}
