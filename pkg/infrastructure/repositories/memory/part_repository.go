package memory

import (
	"fmt"
	"sort"

	"github.com/rackline/stockboard/pkg/domain/entities"
	"github.com/rackline/stockboard/pkg/domain/repositories"
)

// PartRepository provides in-memory part master storage
type PartRepository struct {
	parts map[entities.PartNumber]entities.Part
}

// NewPartRepository creates a new in-memory part repository
func NewPartRepository(expectedParts int) *PartRepository {
	return &PartRepository{
		parts: make(map[entities.PartNumber]entities.Part, expectedParts),
	}
}

// Verify interface compliance
var _ repositories.PartRepository = (*PartRepository)(nil)

// Upsert inserts or overwrites a part
func (r *PartRepository) Upsert(part entities.Part) error {
	if part.PartNumber == "" {
		return fmt.Errorf("part number cannot be empty")
	}
	r.parts[part.PartNumber] = part
	return nil
}

// Get returns the part for a part number
func (r *PartRepository) Get(partNumber entities.PartNumber) (*entities.Part, error) {
	part, exists := r.parts[partNumber]
	if !exists {
		return nil, fmt.Errorf("part %s: %w", partNumber, entities.ErrNotFound)
	}
	return &part, nil
}

// GetAll returns all parts sorted by part number
func (r *PartRepository) GetAll() ([]*entities.Part, error) {
	parts := make([]*entities.Part, 0, len(r.parts))
	for pn := range r.parts {
		part := r.parts[pn]
		parts = append(parts, &part)
	}
	sort.Slice(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})
	return parts, nil
}

// LoadParts upserts a batch of parts. The batch is validated up front
// so a bad row leaves the repository untouched.
func (r *PartRepository) LoadParts(parts []*entities.Part) error {
	for i, part := range parts {
		if part == nil || part.PartNumber == "" {
			return fmt.Errorf("row %d: part number cannot be empty", i+1)
		}
	}
	for _, part := range parts {
		r.parts[part.PartNumber] = *part
	}
	return nil
}
