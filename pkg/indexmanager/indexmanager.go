// Package indexmanager constructs index backends from a strategy kind.
// Relations depend only on the index.Index interface; this is the one
// place that knows about concrete backends.
package indexmanager

import (
	"relalg/pkg/index"
	"relalg/pkg/index/linearhash"
)

// New returns a fresh index of the given kind, or nil for KindNone.
// A nil index means point lookups degrade to full scans.
func New(kind index.Kind) index.Index {
	switch kind {
	case index.KindOrdered:
		return index.NewOrdered()
	case index.KindHash:
		return index.NewStaticHash()
	case index.KindLinear:
		return linearhash.New()
	default:
		return nil
	}
}
