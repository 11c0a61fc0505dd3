// Package lock provides striped per-key mutual exclusion. The ledger uses
// it to guarantee at most one in-flight mutation per account within a
// process; cross-process safety comes from the store's version check.
package lock

import (
	"hash/fnv"
	"sync"
)

const defaultStripes = 64

// KeyedMutex maps keys onto a fixed set of mutex stripes by consistent
// hashing, so all operations on the same key serialize while operations on
// different keys usually proceed in parallel.
type KeyedMutex struct {
	stripes []sync.Mutex
}

// NewKeyedMutex creates a KeyedMutex with numStripes stripes.
// If numStripes <= 0, defaultStripes is used.
func NewKeyedMutex(numStripes int) *KeyedMutex {
	if numStripes <= 0 {
		numStripes = defaultStripes
	}
	return &KeyedMutex{stripes: make([]sync.Mutex, numStripes)}
}

// Lock acquires the stripe owning key and returns its unlock function.
//
//	unlock := m.Lock(accountID)
//	defer unlock()
func (m *KeyedMutex) Lock(key string) (unlock func()) {
	stripe := &m.stripes[m.stripeIndex(key)]
	stripe.Lock()
	return stripe.Unlock
}

// stripeIndex maps a key deterministically to a stripe index.
func (m *KeyedMutex) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(m.stripes)
}
