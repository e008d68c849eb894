package index

import (
	"relalg/pkg/tuple"
)

// DefaultHashBuckets is the fixed bucket count of the plain hash index.
const DefaultHashBuckets = 64

// StaticHash is a plain chained hash index. The bucket count is fixed
// at construction: chains grow without bound under load, unlike the
// linear-hashing index which splits chains incrementally.
type StaticHash struct {
	buckets [][]Entry
	count   int
}

// NewStaticHash creates a hash index with the default bucket count.
func NewStaticHash() *StaticHash {
	return NewStaticHashSized(DefaultHashBuckets)
}

// NewStaticHashSized creates a hash index with a fixed bucket count.
func NewStaticHashSized(numBuckets int) *StaticHash {
	if numBuckets < 1 {
		numBuckets = 1
	}
	return &StaticHash{buckets: make([][]Entry, numBuckets)}
}

func (h *StaticHash) Put(key CompositeKey, value *tuple.Tuple) *tuple.Tuple {
	i := h.bucketFor(key)
	for j, e := range h.buckets[i] {
		if e.Key.Equals(key) {
			prev := e.Value
			h.buckets[i][j].Value = value
			return prev
		}
	}
	h.buckets[i] = append(h.buckets[i], Entry{Key: key, Value: value})
	h.count++
	return nil
}

func (h *StaticHash) Get(key CompositeKey) (*tuple.Tuple, bool) {
	for _, e := range h.buckets[h.bucketFor(key)] {
		if e.Key.Equals(key) {
			return e.Value, true
		}
	}
	return nil, false
}

func (h *StaticHash) All() []Entry {
	out := make([]Entry, 0, h.count)
	for _, b := range h.buckets {
		out = append(out, b...)
	}
	return out
}

func (h *StaticHash) Len() int {
	return h.count
}

func (h *StaticHash) bucketFor(key CompositeKey) int {
	return int(uint64(key.Hash()) % uint64(len(h.buckets)))
}
