package repositories

import "github.com/rackline/stockboard/pkg/domain/entities"

// PartRepository provides access to part master data
type PartRepository interface {
	// Upsert inserts or unconditionally overwrites a part
	Upsert(part entities.Part) error
	// Get returns the part for a part number
	Get(partNumber entities.PartNumber) (*entities.Part, error)
	// GetAll returns all parts in part-number order
	GetAll() ([]*entities.Part, error)
	// LoadParts upserts a batch of parts; a failing row rejects the whole batch
	LoadParts(parts []*entities.Part) error
}
