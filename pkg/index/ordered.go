package index

import (
	"sort"

	"relalg/pkg/tuple"
)

// Ordered is a tree-style index: entries are kept sorted by the keys'
// lexicographic order, so All returns entries in key order and lookups
// are binary searches.
type Ordered struct {
	entries []Entry
}

// NewOrdered creates an empty ordered index.
func NewOrdered() *Ordered {
	return &Ordered{}
}

func (o *Ordered) Put(key CompositeKey, value *tuple.Tuple) *tuple.Tuple {
	i := o.search(key)
	if i < len(o.entries) && o.entries[i].Key.Equals(key) {
		prev := o.entries[i].Value
		o.entries[i].Value = value
		return prev
	}

	o.entries = append(o.entries, Entry{})
	copy(o.entries[i+1:], o.entries[i:])
	o.entries[i] = Entry{Key: key, Value: value}
	return nil
}

func (o *Ordered) Get(key CompositeKey) (*tuple.Tuple, bool) {
	i := o.search(key)
	if i < len(o.entries) && o.entries[i].Key.Equals(key) {
		return o.entries[i].Value, true
	}
	return nil, false
}

func (o *Ordered) All() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

func (o *Ordered) Len() int {
	return len(o.entries)
}

// search returns the position of the first entry whose key is >= key.
func (o *Ordered) search(key CompositeKey) int {
	return sort.Search(len(o.entries), func(i int) bool {
		return o.entries[i].Key.Compare(key) >= 0
	})
}
