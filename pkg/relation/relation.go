// Package relation implements the mutable relation type and its
// algebra: project, select, union, minus and three join variants.
// Every operator materializes a fresh relation; none mutates its
// receiver or argument.
package relation

import (
	"strings"

	"github.com/cockroachdb/errors"

	"relalg/pkg/index"
	"relalg/pkg/indexmanager"
	"relalg/pkg/logging"
	"relalg/pkg/tuple"
	"relalg/pkg/types"
)

// Relation is a named bag of tuples sharing one schema, with an
// optional associative index over the key attributes. A relation is
// mutated only by Insert; algebra operators derive new relations.
type Relation struct {
	name     string
	desc     *tuple.TupleDescription
	keyNames []string
	keyCols  []int
	tuples   []*tuple.Tuple
	idx      index.Index
	kind     index.Kind
	namer    *Namer
}

// New constructs an empty relation. The key names must be a subset of
// the schema's attribute names; the index strategy is fixed at
// construction.
func New(name string, td *tuple.TupleDescription, key []string, kind index.Kind) (*Relation, error) {
	keyCols := make([]int, len(key))
	for i, k := range key {
		col, err := td.FindFieldIndex(k)
		if err != nil {
			return nil, errors.Wrapf(err, "key attribute %q not in schema", k)
		}
		keyCols[i] = col
	}

	keyCopy := make([]string, len(key))
	copy(keyCopy, key)

	return &Relation{
		name:     name,
		desc:     td,
		keyNames: keyCopy,
		keyCols:  keyCols,
		idx:      indexmanager.New(kind),
		kind:     kind,
		namer:    NewNamer(),
	}, nil
}

// Parse constructs an empty relation from whitespace-separated
// attribute, domain and key lists, in the style of a DDL declaration:
//
//	Parse("movie", "title year length", "String Integer Integer", "title", index.KindLinear)
func Parse(name, attributes, domains, key string, kind index.Kind) (*Relation, error) {
	attrList := strings.Fields(attributes)
	domList := strings.Fields(domains)
	if len(attrList) != len(domList) {
		return nil, errors.Newf("attribute count (%d) does not match domain count (%d)",
			len(attrList), len(domList))
	}

	typeList := make([]types.Type, len(domList))
	for i, d := range domList {
		t, ok := types.ParseType(d)
		if !ok {
			return nil, errors.Newf("unknown domain %q", d)
		}
		typeList[i] = t
	}

	td, err := tuple.NewTupleDesc(typeList, attrList)
	if err != nil {
		return nil, err
	}

	logging.Get().Debug("DDL> create relation", "name", name, "attributes", attributes)
	return New(name, td, strings.Fields(key), kind)
}

// Name returns the relation's name.
func (r *Relation) Name() string { return r.name }

// Schema returns the relation's schema.
func (r *Relation) Schema() *tuple.TupleDescription { return r.desc }

// Key returns the relation's key attribute names.
func (r *Relation) Key() []string {
	out := make([]string, len(r.keyNames))
	copy(out, r.keyNames)
	return out
}

// IndexKind returns the index strategy the relation was built with.
func (r *Relation) IndexKind() index.Kind { return r.kind }

// Index exposes the active index, or nil if none. Intended for
// diagnostics such as index dumps; algebra goes through SelectKey.
func (r *Relation) Index() index.Index { return r.idx }

// Len returns the number of tuples.
func (r *Relation) Len() int { return len(r.tuples) }

// Tuples returns the tuple collection in insertion order. The slice is
// a copy; the tuples themselves are shared and must not be modified.
func (r *Relation) Tuples() []*tuple.Tuple {
	out := make([]*tuple.Tuple, len(r.tuples))
	copy(out, r.tuples)
	return out
}

// Col returns the zero-based position of the named attribute, or -1 if
// the relation has no such attribute.
func (r *Relation) Col(attr string) int {
	i, err := r.desc.FindFieldIndex(attr)
	if err != nil {
		return -1
	}
	return i
}

// Insert validates a value list against the schema and appends it as a
// tuple. On failure the tuple collection and the index are left
// untouched; batch callers can tally failures without aborting.
func (r *Relation) Insert(fields ...types.Field) error {
	t, err := tuple.FromFields(r.desc, fields...)
	if err != nil {
		return errors.Wrapf(err, "insert into %s", r.name)
	}
	r.append(t)
	return nil
}

// InsertTuple appends an already-assembled tuple after checking that
// its schema matches. Used by snapshot load to replay rows.
func (r *Relation) InsertTuple(t *tuple.Tuple) error {
	if !r.desc.Equals(t.TupleDesc) {
		return errors.Newf("insert into %s: tuple schema %s does not match %s",
			r.name, t.TupleDesc, r.desc)
	}
	r.append(t)
	return nil
}

// append adds a validated tuple and maintains the index. With an
// active index, a later tuple with a duplicate key projection silently
// overwrites the earlier index entry; the tuple collection keeps both.
func (r *Relation) append(t *tuple.Tuple) {
	r.tuples = append(r.tuples, t)
	if r.idx != nil {
		key, err := index.ExtractKey(t, r.keyCols)
		if err != nil {
			// keyCols are validated at construction; this is unreachable
			// for tuples that passed the schema check.
			logging.Get().Error("index maintenance failed", "relation", r.name, "error", err)
			return
		}
		r.idx.Put(key, t)
	}
}

// derive creates the result shell of an algebra operation: a fresh
// relation named by the shared namer, never aliasing the parent's
// tuple storage.
func (r *Relation) derive(td *tuple.TupleDescription, key []string, kind index.Kind) (*Relation, error) {
	keyCols := make([]int, len(key))
	for i, k := range key {
		col, err := td.FindFieldIndex(k)
		if err != nil {
			return nil, errors.Wrapf(err, "derived key attribute %q not in schema", k)
		}
		keyCols[i] = col
	}

	keyCopy := make([]string, len(key))
	copy(keyCopy, key)

	return &Relation{
		name:     r.namer.Next(r.name),
		desc:     td,
		keyNames: keyCopy,
		keyCols:  keyCols,
		idx:      indexmanager.New(kind),
		kind:     kind,
		namer:    r.namer,
	}, nil
}
