package store

import "sync/atomic"

// Snapshot holds the full record store in memory. It is built once and
// never mutated afterwards, so any number of queries can read it without
// locking. Refreshing data means building a new Snapshot and swapping it
// in through a Catalog.
type Snapshot struct {
	PlayerGames []PlayerGameRecord
	TeamGames   []TeamGameRecord
	Directory   []TeamDirectoryEntry
}

// DirectoryIndex returns a lookup from canonical abbreviation to the full
// franchise name. Rows whose team has no directory entry are dropped by
// callers, not merely unlabeled.
func (s *Snapshot) DirectoryIndex() map[string]TeamDirectoryEntry {
	idx := make(map[string]TeamDirectoryEntry, len(s.Directory))
	for _, entry := range s.Directory {
		idx[entry.Abbreviation] = entry
	}
	return idx
}

// Catalog is the handle query code reads the current Snapshot through.
// It is passed explicitly so tests can substitute a fixture snapshot
// without touching process lifecycle.
type Catalog struct {
	current atomic.Pointer[Snapshot]
}

// NewCatalog creates a catalog serving the given snapshot. A nil snapshot
// is allowed and makes the store report unavailable until Replace is called.
func NewCatalog(snap *Snapshot) *Catalog {
	c := &Catalog{}
	if snap != nil {
		c.current.Store(snap)
	}
	return c
}

// Snapshot returns the current snapshot, or nil when no load has succeeded.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Replace atomically swaps in a freshly loaded snapshot. In-flight queries
// keep reading the snapshot they started with.
func (c *Catalog) Replace(snap *Snapshot) {
	c.current.Store(snap)
}
