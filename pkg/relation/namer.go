package relation

import "strconv"

// Namer issues the synthetic names of derived relations: the parent's
// name plus a monotonically increasing counter. Every relation derived
// from a common ancestor shares one Namer, so derived names never
// collide. The counter is seedable for deterministic tests.
type Namer struct {
	count int
}

// NewNamer creates a namer whose counter starts at zero.
func NewNamer() *Namer {
	return &Namer{}
}

// Seed resets the counter.
func (n *Namer) Seed(v int) {
	n.count = v
}

// Next returns base suffixed with the current counter value and
// advances the counter.
func (n *Namer) Next(base string) string {
	name := base + strconv.Itoa(n.count)
	n.count++
	return name
}
