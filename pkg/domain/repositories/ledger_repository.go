package repositories

import "github.com/rackline/stockboard/pkg/domain/entities"

// LedgerRepository stores the append-only movement ledger. Entries are
// never edited or removed once appended.
type LedgerRepository interface {
	// Append records a new ledger entry
	Append(entry entities.LedgerEntry) error
	// NewestFirst returns a snapshot of all entries, most recent first
	NewestFirst() ([]entities.LedgerEntry, error)
	// OldestFirst returns a snapshot of all entries in append order
	OldestFirst() ([]entities.LedgerEntry, error)
}
