package hashing

// tableKey identifies a cached count: the same position searched to a
// different depth is a different entry.
type tableKey struct {
	hash  uint64
	depth int
}

// PerftTable caches leaf-node counts by position key and depth.
type PerftTable struct {
	entries map[tableKey]uint64
	// maxCapacity limits stored entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewPerftTable creates an empty table.
// maxCapacity of 0 means unlimited capacity.
func NewPerftTable(maxCapacity int) *PerftTable {
	return &PerftTable{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for hash at depth.
func (t *PerftTable) Lookup(hash uint64, depth int) (uint64, bool) {
	nodes, ok := t.entries[tableKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records a count. Once the table is full new keys are dropped and
// Store returns false; existing keys are still updated.
func (t *PerftTable) Store(hash uint64, depth int, nodes uint64) bool {
	key := tableKey{hash, depth}
	if _, exists := t.entries[key]; !exists && t.IsFull() {
		return false
	}
	t.entries[key] = nodes
	return true
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *PerftTable) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Len returns the number of stored entries.
func (t *PerftTable) Len() int {
	return len(t.entries)
}

// Hits returns the number of successful lookups.
func (t *PerftTable) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *PerftTable) Misses() int {
	return t.misses
}

// Reset clears the table and its counters.
func (t *PerftTable) Reset() {
	t.entries = make(map[tableKey]uint64)
	t.hits = 0
	t.misses = 0
}
