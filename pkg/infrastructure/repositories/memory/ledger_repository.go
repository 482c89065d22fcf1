package memory

import (
	"sync"

	"github.com/rackline/stockboard/pkg/domain/entities"
	"github.com/rackline/stockboard/pkg/domain/repositories"
)

// LedgerRepository provides in-memory append-only ledger storage.
// Entries are kept in append order; reads return snapshot copies so
// callers never alias the live slice.
type LedgerRepository struct {
	entries []entities.LedgerEntry
	mutex   sync.RWMutex
}

// NewLedgerRepository creates a new in-memory ledger repository
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		entries: make([]entities.LedgerEntry, 0),
	}
}

// Verify interface compliance
var _ repositories.LedgerRepository = (*LedgerRepository)(nil)

// Append records a new ledger entry
func (r *LedgerRepository) Append(entry entities.LedgerEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

// NewestFirst returns a snapshot of all entries, most recent first
func (r *LedgerRepository) NewestFirst() ([]entities.LedgerEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	snapshot := make([]entities.LedgerEntry, len(r.entries))
	for i := range r.entries {
		snapshot[len(r.entries)-1-i] = r.entries[i]
	}
	return snapshot, nil
}

// OldestFirst returns a snapshot of all entries in append order
func (r *LedgerRepository) OldestFirst() ([]entities.LedgerEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	snapshot := make([]entities.LedgerEntry, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot, nil
}
