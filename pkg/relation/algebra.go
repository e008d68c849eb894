package relation

import (
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/index"
	"relalg/pkg/logging"
	"relalg/pkg/tuple"
)

// Project keeps only the requested attributes, in the requested order.
// The result's key is the original key when the projection retains all
// of it, otherwise the requested attributes themselves. Duplicate rows
// in the projected attribute set are eliminated, per relational-algebra
// semantics.
func (r *Relation) Project(attributes string) (*Relation, error) {
	logging.Get().Debug("RA> project", "relation", r.name, "attributes", attributes)

	attrs := strings.Fields(attributes)
	if len(attrs) == 0 {
		return nil, errors.Wrap(ErrMalformedCondition, "project: no attributes given")
	}

	cols := make([]int, len(attrs))
	for i, a := range attrs {
		c, err := r.desc.FindFieldIndex(a)
		if err != nil {
			return nil, errors.Wrapf(err, "project on %s", r.name)
		}
		cols[i] = c
	}

	projDesc, err := r.desc.Project(cols)
	if err != nil {
		return nil, err
	}

	newKey := attrs
	if containsAll(attrs, r.keyNames) {
		newKey = r.keyNames
	}

	out, err := r.derive(projDesc, newKey, r.kind)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(r.tuples))
	for _, t := range r.tuples {
		projected, err := t.Project(projDesc, cols)
		if err != nil {
			return nil, err
		}
		fp := projected.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out.append(projected)
	}
	return out, nil
}

// SelectWhere keeps the tuples satisfying an arbitrary boolean
// predicate over the full tuple. The schema is unchanged.
func (r *Relation) SelectWhere(predicate func(*tuple.Tuple) bool) (*Relation, error) {
	logging.Get().Debug("RA> select", "relation", r.name, "predicate", "func")

	out, err := r.derive(r.desc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}
	for _, t := range r.tuples {
		if predicate(t) {
			out.append(t)
		}
	}
	return out, nil
}

// Select keeps the tuples satisfying a simple "attr op literal"
// condition, with op one of ==, !=, <, <=, >, >=. The literal is
// parsed into the named attribute's domain before comparison. An
// unknown attribute name yields an empty result, reported but not
// fatal; a condition that does not parse is a hard failure.
func (r *Relation) Select(condition string) (*Relation, error) {
	logging.Get().Debug("RA> select", "relation", r.name, "condition", condition)

	cond, err := parseSelectCondition(condition)
	if err != nil {
		return nil, err
	}

	out, derr := r.derive(r.desc, r.keyNames, r.kind)
	if derr != nil {
		return nil, derr
	}

	colNo, err := r.desc.FindFieldIndex(cond.attr)
	if err != nil {
		logging.Get().Warn("select: unknown attribute, no tuples match",
			"relation", r.name, "attribute", cond.attr)
		return out, nil
	}

	colType, _ := r.desc.TypeAtIndex(colNo)
	literal, err := cond.literalAs(colType)
	if err != nil {
		return nil, err
	}

	for _, t := range r.tuples {
		field, err := t.GetField(colNo)
		if err != nil {
			return nil, err
		}
		if field.Compare(cond.op, literal) {
			out.append(t)
		}
	}
	return out, nil
}

// SelectKey performs an indexed point lookup, returning zero or one
// tuples. Without an active index it degrades to a full scan comparing
// each tuple's key projection to the given key: same result, different
// cost.
func (r *Relation) SelectKey(key index.CompositeKey) (*Relation, error) {
	logging.Get().Debug("RA> select", "relation", r.name, "key", key.String())

	out, err := r.derive(r.desc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}

	if r.idx != nil {
		if t, ok := r.idx.Get(key); ok {
			out.append(t)
		}
		return out, nil
	}

	for _, t := range r.tuples {
		tk, err := index.ExtractKey(t, r.keyCols)
		if err != nil {
			return nil, err
		}
		if tk.Equals(key) {
			out.append(t)
			break
		}
	}
	return out, nil
}

// Union concatenates the tuples of two compatible relations as a bag:
// duplicates are not eliminated. Incompatible inputs are a reported
// failure, not a crash.
func (r *Relation) Union(other *Relation) (*Relation, error) {
	logging.Get().Debug("RA> union", "relation", r.name, "other", other.name)

	if err := r.compatible(other); err != nil {
		return nil, err
	}

	out, err := r.derive(r.desc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}
	for _, t := range r.tuples {
		out.append(t)
	}
	for _, t := range other.tuples {
		out.append(t)
	}
	return out, nil
}

// Minus keeps the receiver's tuples that have no full-value match in
// other. The relations must be compatible.
func (r *Relation) Minus(other *Relation) (*Relation, error) {
	logging.Get().Debug("RA> minus", "relation", r.name, "other", other.name)

	if err := r.compatible(other); err != nil {
		return nil, err
	}

	out, err := r.derive(r.desc, r.keyNames, r.kind)
	if err != nil {
		return nil, err
	}

	otherSet := make(map[string]struct{}, len(other.tuples))
	for _, t := range other.tuples {
		otherSet[t.Fingerprint()] = struct{}{}
	}
	for _, t := range r.tuples {
		if _, found := otherSet[t.Fingerprint()]; !found {
			out.append(t)
		}
	}
	return out, nil
}

// compatible checks that both relations have the same arity and
// positionally identical domains.
func (r *Relation) compatible(other *Relation) error {
	if r.desc.DomainsEqual(other.desc) {
		return nil
	}
	logging.Get().Warn("incompatible schemas",
		"relation", r.name, "schema", r.desc.String(),
		"other", other.name, "otherSchema", other.desc.String())
	return errors.Wrapf(ErrIncompatibleSchema, "%s vs %s", r.name, other.name)
}

// containsAll reports whether every element of sub appears in set.
func containsAll(set, sub []string) bool {
	for _, s := range sub {
		found := false
		for _, e := range set {
			if e == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
