package primitives

// HashCode represents a hash value computed for a field or composite key.
// It is used for bucket routing in hash-based indexes.
type HashCode uint64
