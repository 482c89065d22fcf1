package memory

import (
	"fmt"
	"sort"

	"github.com/rackline/stockboard/pkg/domain/entities"
	"github.com/rackline/stockboard/pkg/domain/repositories"
)

// RackRepository provides in-memory rack storage. The rack set is fixed
// at construction time.
type RackRepository struct {
	racks map[entities.RackID]*entities.Rack
	order []entities.RackID
}

// NewRackRepository builds racks from the configured space counts and a
// system-wide fixed row count.
func NewRackRepository(spaces map[entities.RackID]int, rows int) (*RackRepository, error) {
	ids := make([]entities.RackID, 0, len(spaces))
	for id := range spaces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	racks := make(map[entities.RackID]*entities.Rack, len(spaces))
	for _, id := range ids {
		rack, err := entities.NewRack(id, spaces[id], rows)
		if err != nil {
			return nil, fmt.Errorf("failed to build rack %s: %w", id, err)
		}
		racks[id] = rack
	}

	return &RackRepository{racks: racks, order: ids}, nil
}

// Verify interface compliance
var _ repositories.RackRepository = (*RackRepository)(nil)

// GetRack returns the rack with the given identifier
func (r *RackRepository) GetRack(id entities.RackID) (*entities.Rack, error) {
	rack, exists := r.racks[id]
	if !exists {
		return nil, fmt.Errorf("rack %s: %w", id, entities.ErrNotFound)
	}
	return rack, nil
}

// AllRacks returns all racks in identifier order
func (r *RackRepository) AllRacks() ([]*entities.Rack, error) {
	racks := make([]*entities.Rack, 0, len(r.order))
	for _, id := range r.order {
		racks = append(racks, r.racks[id])
	}
	return racks, nil
}
