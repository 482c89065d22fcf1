package entities

import "errors"

// Error kinds surfaced by stock operations. Callers distinguish them
// with errors.Is; every failure leaves inventory state untouched.
var (
	// ErrOutOfRange reports a cell number or coordinate outside the rack shape.
	ErrOutOfRange = errors.New("out of range")

	// ErrPartMismatch reports a movement against a cell holding a different part.
	ErrPartMismatch = errors.New("part mismatch")

	// ErrCapacityExceeded reports an add that would overflow the cell capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInsufficientStock reports a subtract larger than the held quantity.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity reports a non-positive movement quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidInput reports malformed caller input other than quantity,
	// such as an empty part number or a non-movement action.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound reports a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrImport reports a rejected bulk part-master import.
	ErrImport = errors.New("import error")
)
