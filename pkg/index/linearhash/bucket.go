package linearhash

import (
	"relalg/pkg/index"
)

// nilBucket marks the absence of an overflow link in the bucket arena.
const nilBucket = -1

// bucket is the unit of linear-hash storage: a fixed-capacity slot
// array plus a link to the next overflow bucket. Buckets live in an
// arena and reference one another by arena address, never by pointer.
type bucket struct {
	slots []index.Entry // live entries, at most the configured capacity
	next  int           // arena address of the overflow bucket, or nilBucket
}

func (b *bucket) full(capacity int) bool {
	return len(b.slots) >= capacity
}

// arena owns every bucket of the index. Freed buckets are recycled
// through a free list so repeated splits do not grow the arena
// unboundedly.
type arena struct {
	buckets []bucket
	free    []int
}

// alloc returns the address of an empty bucket with no overflow link.
func (a *arena) alloc(capacity int) int {
	if n := len(a.free); n > 0 {
		addr := a.free[n-1]
		a.free = a.free[:n-1]
		a.buckets[addr] = bucket{slots: make([]index.Entry, 0, capacity), next: nilBucket}
		return addr
	}
	a.buckets = append(a.buckets, bucket{slots: make([]index.Entry, 0, capacity), next: nilBucket})
	return len(a.buckets) - 1
}

// release returns every bucket of the chain starting at head to the
// free list.
func (a *arena) release(head int) {
	for addr := head; addr != nilBucket; {
		next := a.buckets[addr].next
		a.buckets[addr] = bucket{next: nilBucket}
		a.free = append(a.free, addr)
		addr = next
	}
}

func (a *arena) at(addr int) *bucket {
	return &a.buckets[addr]
}
