// Package linearhash implements a growable hash index using the linear
// hashing algorithm: a sequence of bucket chains that is extended one
// chain at a time, migrating the entries of a single chain per split,
// so the index grows incrementally instead of rehashing wholesale.
package linearhash

import (
	"fmt"
	"io"
	"strings"

	"relalg/pkg/index"
	"relalg/pkg/primitives"
	"relalg/pkg/tuple"
)

// Defaults of the algorithm's fixed parameters.
const (
	// DefaultSlots is the number of key-value slots per bucket.
	DefaultSlots = 4
	// DefaultThreshold is the load-factor bound that triggers a split.
	DefaultThreshold = 1.1
	// initialChains is the initial low modulus M1.
	initialChains = 4
)

// LinearHash maps composite keys to tuples through a growable sequence
// of bucket chains.
//
// Routing uses two moduli: the low modulus mod1 and the high modulus
// mod2 = 2*mod1. A key first hashes to idx1 = hash mod mod1. Chains
// below splitIdx have already been split this round, so for them the
// key re-routes to idx2 = hash mod mod2. Get, Put and split migration
// all use this one rule; a key is never resolvable by idx1 once its
// home chain has been split.
type LinearHash struct {
	arena  arena
	chains []int // arena address of each chain's home bucket

	slots     int     // slots per bucket (S)
	threshold float64 // load-factor bound (T)

	mod1     int // low modulus M1
	mod2     int // high modulus M2 = 2*M1
	splitIdx int // next chain to split, in [0, mod1)
	keyCount int // live keys
	splits   int // completed splits, cumulative across rounds
}

// New creates a linear-hash index with the default parameters.
func New() *LinearHash {
	return NewWith(DefaultSlots, DefaultThreshold)
}

// NewWith creates a linear-hash index with the given slots-per-bucket
// and load-factor threshold. Both are fixed for the index's lifetime.
func NewWith(slots int, threshold float64) *LinearHash {
	if slots < 1 {
		slots = DefaultSlots
	}
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	lh := &LinearHash{
		slots:     slots,
		threshold: threshold,
		mod1:      initialChains,
		mod2:      2 * initialChains,
	}
	lh.chains = make([]int, initialChains)
	for i := range lh.chains {
		lh.chains[i] = lh.arena.alloc(slots)
	}
	return lh
}

// route returns the chain holding (or destined to hold) a key with the
// given hash code.
func (lh *LinearHash) route(h primitives.HashCode) int {
	idx := int(uint64(h) % uint64(lh.mod1))
	if idx < lh.splitIdx {
		idx = int(uint64(h) % uint64(lh.mod2))
	}
	return idx
}

// Get returns the tuple mapped to key. A miss returns (nil, false).
func (lh *LinearHash) Get(key index.CompositeKey) (*tuple.Tuple, bool) {
	chain := lh.route(key.Hash())
	for addr := lh.chains[chain]; addr != nilBucket; addr = lh.arena.at(addr).next {
		for _, e := range lh.arena.at(addr).slots {
			if e.Key.Equals(key) {
				return e.Value, true
			}
		}
	}
	return nil, false
}

// Put inserts or overwrites the mapping for key and returns the prior
// tuple, or nil if the key was absent. An insert that pushes the load
// factor beyond the threshold runs one split before the new pair is
// placed.
func (lh *LinearHash) Put(key index.CompositeKey, value *tuple.Tuple) *tuple.Tuple {
	h := key.Hash()
	chain := lh.route(h)

	for addr := lh.chains[chain]; addr != nilBucket; addr = lh.arena.at(addr).next {
		b := lh.arena.at(addr)
		for i, e := range b.slots {
			if e.Key.Equals(key) {
				prev := e.Value
				b.slots[i].Value = value
				return prev
			}
		}
	}

	lh.keyCount++
	if lh.loadFactor() > lh.threshold {
		lh.split()
		// The split may have advanced splitIdx past the key's home
		// chain; route again before placing.
		chain = lh.route(h)
	}

	lh.place(chain, index.Entry{Key: key, Value: value})
	return nil
}

// place appends an entry to the first bucket with a free slot along the
// chain, extending the chain with an overflow bucket when all are full.
func (lh *LinearHash) place(chain int, e index.Entry) {
	addr := lh.chains[chain]
	for {
		b := lh.arena.at(addr)
		if !b.full(lh.slots) {
			b.slots = append(b.slots, e)
			return
		}
		if b.next == nilBucket {
			break
		}
		addr = b.next
	}

	overflow := lh.arena.alloc(lh.slots)
	lh.arena.at(overflow).slots = append(lh.arena.at(overflow).slots, e)
	lh.arena.at(addr).next = overflow
}

// split appends a new chain and redistributes the entries of chain
// splitIdx between it and the new chain using the high modulus. When
// every chain of the current round has split, the moduli double and a
// new round begins.
func (lh *LinearHash) split() {
	target := lh.splitIdx
	newChain := len(lh.chains)
	lh.chains = append(lh.chains, lh.arena.alloc(lh.slots))

	var stay, move []index.Entry
	for addr := lh.chains[target]; addr != nilBucket; addr = lh.arena.at(addr).next {
		for _, e := range lh.arena.at(addr).slots {
			idx2 := int(uint64(e.Key.Hash()) % uint64(lh.mod2))
			if idx2 == target {
				stay = append(stay, e)
			} else {
				move = append(move, e)
			}
		}
	}

	lh.arena.release(lh.chains[target])
	lh.chains[target] = lh.arena.alloc(lh.slots)
	for _, e := range stay {
		lh.place(target, e)
	}
	for _, e := range move {
		lh.place(newChain, e)
	}

	lh.splits++
	lh.splitIdx++
	if lh.splitIdx == lh.mod1 {
		lh.splitIdx = 0
		lh.mod1 = lh.mod2
		lh.mod2 = 2 * lh.mod1
	}
}

// loadFactor is live keys over total home-slot capacity.
func (lh *LinearHash) loadFactor() float64 {
	return float64(lh.keyCount) / (float64(lh.slots) * float64(len(lh.chains)))
}

// All returns every entry, chain-major in chain order.
func (lh *LinearHash) All() []index.Entry {
	out := make([]index.Entry, 0, lh.keyCount)
	for _, head := range lh.chains {
		for addr := head; addr != nilBucket; addr = lh.arena.at(addr).next {
			out = append(out, lh.arena.at(addr).slots...)
		}
	}
	return out
}

// Len returns the number of live keys.
func (lh *LinearHash) Len() int {
	return lh.keyCount
}

// Stats describes the index's current shape.
type Stats struct {
	Chains     int     // number of bucket chains
	Buckets    int     // buckets in use, overflow included
	Keys       int     // live keys
	Splits     int     // completed splits since construction
	LoadFactor float64 // keys / (slots * chains)
}

func (lh *LinearHash) Stats() Stats {
	buckets := 0
	for _, head := range lh.chains {
		for addr := head; addr != nilBucket; addr = lh.arena.at(addr).next {
			buckets++
		}
	}
	return Stats{
		Chains:     len(lh.chains),
		Buckets:    buckets,
		Keys:       lh.keyCount,
		Splits:     lh.splits,
		LoadFactor: lh.loadFactor(),
	}
}

// Dump writes a human-readable chain-by-chain listing of the table.
func (lh *LinearHash) Dump(w io.Writer) {
	fmt.Fprintln(w, "LinearHash")
	fmt.Fprintln(w, "-------------------------------------------")
	for i, head := range lh.chains {
		var parts []string
		for addr := head; addr != nilBucket; addr = lh.arena.at(addr).next {
			keys := make([]string, 0, len(lh.arena.at(addr).slots))
			for _, e := range lh.arena.at(addr).slots {
				keys = append(keys, e.Key.String())
			}
			parts = append(parts, "[ "+strings.Join(keys, " . ")+" ]")
		}
		fmt.Fprintf(w, "chain [ %d ] = %s\n", i, strings.Join(parts, " --> "))
	}
	fmt.Fprintln(w, "-------------------------------------------")
}
