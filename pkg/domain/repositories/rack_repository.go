package repositories

import "github.com/rackline/stockboard/pkg/domain/entities"

// RackRepository provides access to the rack grid. Racks are created
// once at startup; the repository never reshapes them.
type RackRepository interface {
	// GetRack returns the rack with the given identifier
	GetRack(id entities.RackID) (*entities.Rack, error)
	// AllRacks returns all racks in identifier order
	AllRacks() ([]*entities.Rack, error)
}
