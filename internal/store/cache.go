package store

import (
	"github.com/dgraph-io/ristretto"
)

// NewCache builds the shared read cache used by the reference-data
// stores. Costs are uniform; the cache only ever holds a handful of
// small slices, so the sizing is generous.
func NewCache() (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
}
