package relation

import (
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/index"
	"relalg/pkg/logging"
	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

// equiShape carries the column resolution of an equi-join: the match
// columns on both sides, the surviving right columns (those not named
// in attributes2), and the output schemas. Surviving right attributes
// whose names collide with a receiver attribute get a "2" suffix.
type equiShape struct {
	tCols     []int // match columns in the receiver
	uCols     []int // match columns in other
	rCols     []int // surviving columns in other
	rightDesc *tuple.TupleDescription
	outDesc   *tuple.TupleDescription
}

func (r *Relation) equiShape(attrs1, attrs2 []string, other *Relation) (equiShape, error) {
	if len(attrs1) == 0 || len(attrs1) != len(attrs2) {
		return equiShape{}, errors.Wrapf(ErrMalformedCondition,
			"join attribute lists %v and %v differ in length", attrs1, attrs2)
	}

	var s equiShape
	s.tCols = make([]int, len(attrs1))
	s.uCols = make([]int, len(attrs2))
	for k := range attrs1 {
		c, err := r.desc.FindFieldIndex(attrs1[k])
		if err != nil {
			return equiShape{}, errors.Wrapf(err, "join on %s", r.name)
		}
		s.tCols[k] = c
		c, err = other.desc.FindFieldIndex(attrs2[k])
		if err != nil {
			return equiShape{}, errors.Wrapf(err, "join on %s", other.name)
		}
		s.uCols[k] = c
	}

	dropped := make(map[string]struct{}, len(attrs2))
	for _, a := range attrs2 {
		dropped[a] = struct{}{}
	}

	var rightTypes []types.Type
	var rightNames []string
	for i, name := range other.desc.FieldNames {
		if _, drop := dropped[name]; drop {
			continue
		}
		s.rCols = append(s.rCols, i)
		rightTypes = append(rightTypes, other.desc.Types[i])
		rightNames = append(rightNames, disambiguate(name, r.desc.FieldNames))
	}

	s.rightDesc = &tuple.TupleDescription{Types: rightTypes, FieldNames: rightNames}
	s.outDesc = tuple.Combine(r.desc, s.rightDesc)
	return s, nil
}

// disambiguate suffixes a right-side attribute name with "2" when it
// collides with a left-side attribute name.
func disambiguate(name string, leftNames []string) string {
	for _, l := range leftNames {
		if l == name {
			return name + "2"
		}
	}
	return name
}

// Join performs an equi-join: a nested-loop match requiring the
// receiver's attributes1 columns to equal other's attributes2 columns,
// position by position. Output tuples concatenate the receiver tuple
// with the other tuple stripped of its attributes2 columns; surviving
// right attributes that collide with a receiver attribute are renamed
// with a "2" suffix. The result keeps the receiver's key. Output order
// is deterministic: receiver-major, other-minor.
func (r *Relation) Join(attributes1, attributes2 string, other *Relation) (*Relation, error) {
	logging.Get().Debug("RA> join", "relation", r.name,
		"attributes1", attributes1, "attributes2", attributes2, "other", other.name)

	shape, err := r.equiShape(strings.Fields(attributes1), strings.Fields(attributes2), other)
	if err != nil {
		return nil, err
	}

	out, err := r.derive(shape.outDesc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}

	for _, t1 := range r.tuples {
		for _, t2 := range other.tuples {
			match, err := matchesOn(t1, t2, shape.tCols, shape.uCols)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
			joined, err := combineEqui(shape, t1, t2)
			if err != nil {
				return nil, err
			}
			out.append(joined)
		}
	}
	return out, nil
}

// IndexJoin is the equi-join implemented against other's index: when
// attributes2 is exactly other's key and an index is active, each
// receiver tuple probes the index instead of scanning other. The
// result shape is identical to Join. Without a usable index it falls
// back to the nested-loop join.
func (r *Relation) IndexJoin(attributes1, attributes2 string, other *Relation) (*Relation, error) {
	uAttrs := strings.Fields(attributes2)
	if other.idx == nil || !equalStrings(uAttrs, other.keyNames) {
		return r.Join(attributes1, attributes2, other)
	}

	logging.Get().Debug("RA> indexed join", "relation", r.name,
		"attributes1", attributes1, "attributes2", attributes2, "other", other.name)

	shape, err := r.equiShape(strings.Fields(attributes1), uAttrs, other)
	if err != nil {
		return nil, err
	}

	out, err := r.derive(shape.outDesc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}

	for _, t1 := range r.tuples {
		probe := make(index.CompositeKey, len(shape.tCols))
		for k, c := range shape.tCols {
			field, err := t1.GetField(c)
			if err != nil {
				return nil, err
			}
			probe[k] = field
		}
		t2, ok := other.idx.Get(probe)
		if !ok {
			continue
		}
		joined, err := combineEqui(shape, t1, t2)
		if err != nil {
			return nil, err
		}
		out.append(joined)
	}
	return out, nil
}

// JoinOn performs a theta-join on a single "attr1 op attr2" condition
// with op one of =, !=, <, <=, >, >=. Output tuples are the full
// concatenation of both inputs. Colliding attribute names on the right
// get the same "2" suffix as in the equi-join: one consistent
// disambiguation policy across both join variants.
func (r *Relation) JoinOn(condition string, other *Relation) (*Relation, error) {
	logging.Get().Debug("RA> join", "relation", r.name,
		"condition", condition, "other", other.name)

	cond, err := parseJoinCondition(condition)
	if err != nil {
		return nil, err
	}

	leftCol, err := r.desc.FindFieldIndex(cond.leftAttr)
	if err != nil {
		return nil, errors.Wrapf(err, "join on %s", r.name)
	}
	rightCol, err := other.desc.FindFieldIndex(cond.rightAttr)
	if err != nil {
		return nil, errors.Wrapf(err, "join on %s", other.name)
	}

	rightNames := make([]string, len(other.desc.FieldNames))
	for i, name := range other.desc.FieldNames {
		rightNames[i] = disambiguate(name, r.desc.FieldNames)
	}
	rightDesc := &tuple.TupleDescription{Types: other.desc.Types, FieldNames: rightNames}
	outDesc := tuple.Combine(r.desc, rightDesc)

	out, err := r.derive(outDesc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}

	for _, t1 := range r.tuples {
		leftVal, err := t1.GetField(leftCol)
		if err != nil {
			return nil, err
		}
		for _, t2 := range other.tuples {
			rightVal, err := t2.GetField(rightCol)
			if err != nil {
				return nil, err
			}
			if !leftVal.Compare(cond.op, rightVal) {
				continue
			}
			joined, err := tuple.CombineTuples(outDesc, t1, t2)
			if err != nil {
				return nil, err
			}
			out.append(joined)
		}
	}
	return out, nil
}

// NaturalJoin equality-matches the attributes common to both relations
// by name, in the receiver's order, and drops the duplicate columns by
// delegating to the equi-join. With no common attributes the result is
// the full cartesian product of direct concatenations.
func (r *Relation) NaturalJoin(other *Relation) (*Relation, error) {
	var common []string
	for _, name := range r.desc.FieldNames {
		if _, err := other.desc.FindFieldIndex(name); err == nil {
			common = append(common, name)
		}
	}

	if len(common) == 0 {
		logging.Get().Debug("RA> natural join (cartesian product)",
			"relation", r.name, "other", other.name)

		outDesc := tuple.Combine(r.desc, other.desc)
		out, err := r.derive(outDesc, r.keyNames, r.kind)
		if err != nil {
			return nil, err
		}
		for _, t1 := range r.tuples {
			for _, t2 := range other.tuples {
				joined, err := tuple.CombineTuples(outDesc, t1, t2)
				if err != nil {
					return nil, err
				}
				out.append(joined)
			}
		}
		return out, nil
	}

	attrs := strings.Join(common, " ")
	return r.Join(attrs, attrs, other)
}

// matchesOn reports whether t1 and t2 agree on every match column pair.
func matchesOn(t1, t2 *tuple.Tuple, tCols, uCols []int) (bool, error) {
	for k := range tCols {
		f1, err := t1.GetField(tCols[k])
		if err != nil {
			return false, err
		}
		f2, err := t2.GetField(uCols[k])
		if err != nil {
			return false, err
		}
		if !f1.Equals(f2) {
			return false, nil
		}
	}
	return true, nil
}

// combineEqui concatenates a receiver tuple with the surviving columns
// of a matching right tuple.
func combineEqui(shape equiShape, t1, t2 *tuple.Tuple) (*tuple.Tuple, error) {
	rightPart, err := t2.Project(shape.rightDesc, shape.rCols)
	if err != nil {
		return nil, err
	}
	return tuple.CombineTuples(shape.outDesc, t1, rightPart)
}

// equalStrings reports element-wise equality of two string slices.
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
