package entities

import (
	"fmt"
)

// RackID represents a named storage rack
type RackID string

// CellNo is the 1-based human-facing cell address, numbered bottom row
// first, left to right, bottom to top
type CellNo int

// Coord addresses a cell by internal grid indices; row 0 is the visual top row
type Coord struct {
	Row int
	Col int
}

// Cell is the smallest addressable storage unit; it holds at most one
// part type. An empty cell has PartNumber == "" and Quantity == 0.
type Cell struct {
	PartNumber PartNumber
	Quantity   Quantity
}

// IsEmpty reports whether the cell holds no stock
func (c Cell) IsEmpty() bool {
	return c.PartNumber == "" || c.Quantity == 0
}

// Rack is a fixed-shape grid of cells. The shape is immutable after
// construction; Rows*Cols >= Spaces and the trailing padding positions
// are never addressable through a valid cell number.
type Rack struct {
	ID     RackID
	Rows   int
	Cols   int
	Spaces int
	cells  []Cell
}

// NewRack creates a rack with the given addressable space count and
// fixed row count. The column count is derived as ceil(spaces/rows).
func NewRack(id RackID, spaces, rows int) (*Rack, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("rack id cannot be empty")
	}
	if spaces < 1 {
		return nil, fmt.Errorf("rack %s: spaces must be positive, got %d", id, spaces)
	}
	if rows < 1 {
		return nil, fmt.Errorf("rack %s: rows must be positive, got %d", id, rows)
	}

	cols := (spaces + rows - 1) / rows

	return &Rack{
		ID:     id,
		Rows:   rows,
		Cols:   cols,
		Spaces: spaces,
		cells:  make([]Cell, rows*cols),
	}, nil
}

// CellToCoord converts a 1-based cell number (bottom-left = 1) to
// internal grid indices, where row 0 is the visual top row.
func (r *Rack) CellToCoord(cellNo CellNo) (Coord, error) {
	if cellNo < 1 || int(cellNo) > r.Spaces {
		return Coord{}, fmt.Errorf("rack %s: cell %d outside [1, %d]: %w", r.ID, cellNo, r.Spaces, ErrOutOfRange)
	}

	rowFromBottom := (int(cellNo) - 1) / r.Cols
	return Coord{
		Row: r.Rows - 1 - rowFromBottom,
		Col: (int(cellNo) - 1) % r.Cols,
	}, nil
}

// CoordToCell converts internal grid indices back to the 1-based cell
// number. It is the exact inverse of CellToCoord for every cell number
// in [1, Spaces].
func (r *Rack) CoordToCell(coord Coord) (CellNo, error) {
	if coord.Row < 0 || coord.Row >= r.Rows || coord.Col < 0 || coord.Col >= r.Cols {
		return 0, fmt.Errorf("rack %s: coord (%d,%d) outside %dx%d grid: %w", r.ID, coord.Row, coord.Col, r.Rows, r.Cols, ErrOutOfRange)
	}

	rowFromBottom := r.Rows - 1 - coord.Row
	cellNo := CellNo(rowFromBottom*r.Cols + coord.Col + 1)
	if int(cellNo) > r.Spaces {
		// padding position beyond the addressable spaces
		return 0, fmt.Errorf("rack %s: coord (%d,%d) is padding: %w", r.ID, coord.Row, coord.Col, ErrOutOfRange)
	}
	return cellNo, nil
}

// CellAt returns the live cell at validated grid indices
func (r *Rack) CellAt(coord Coord) (*Cell, error) {
	if _, err := r.CoordToCell(coord); err != nil {
		return nil, err
	}
	return &r.cells[coord.Row*r.Cols+coord.Col], nil
}

// CellByNumber returns the live cell at a validated 1-based cell number
func (r *Rack) CellByNumber(cellNo CellNo) (*Cell, error) {
	coord, err := r.CellToCoord(cellNo)
	if err != nil {
		return nil, err
	}
	return &r.cells[coord.Row*r.Cols+coord.Col], nil
}

// TotalQuantity returns the summed quantity across all cells
func (r *Rack) TotalQuantity() Quantity {
	var total Quantity
	for i := range r.cells {
		total += r.cells[i].Quantity
	}
	return total
}
