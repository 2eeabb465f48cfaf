package hashing

import "sync"

// ThreadSafeTable wraps PerftTable with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *PerftTable
	mu    sync.RWMutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{
		table: NewPerftTable(maxCapacity),
	}
}

// Lookup returns the stored count for hash at depth. It takes the write
// lock because lookups update the hit counters.
func (t *ThreadSafeTable) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(hash, depth)
}

// Store records a count; see PerftTable.Store.
func (t *ThreadSafeTable) Store(hash uint64, depth int, nodes uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Store(hash, depth, nodes)
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Len()
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.Hits()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table.IsFull()
}

// LoadFromTable copies entries from an existing table. Call before concurrent use.
func (t *ThreadSafeTable) LoadFromTable(other *PerftTable) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key, nodes := range other.entries {
		t.table.entries[key] = nodes
	}
}
