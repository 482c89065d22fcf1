package services

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/application/dto"
	"github.com/rackline/stockboard/pkg/domain/entities"
	"github.com/rackline/stockboard/pkg/domain/repositories"
)

// StockService orchestrates every stock operation: movements against
// the rack grid, part master maintenance, the FIFO lookup and the
// read-only projections consumed by the presentation layer.
//
// The whole inventory state is guarded by one coarse RWMutex so a
// movement and its ledger append are observed as a single atomic unit,
// and the FIFO scan sees a consistent snapshot of ledger and grid.
type StockService struct {
	racks  repositories.RackRepository
	parts  repositories.PartRepository
	ledger repositories.LedgerRepository

	cellCapacity    entities.Quantity
	packagingWeight decimal.Decimal

	mutex sync.RWMutex
}

// NewStockService creates a stock service over the given repositories
func NewStockService(
	racks repositories.RackRepository,
	parts repositories.PartRepository,
	ledger repositories.LedgerRepository,
	cellCapacity int,
	packagingWeightKG float64,
) *StockService {
	return &StockService{
		racks:           racks,
		parts:           parts,
		ledger:          ledger,
		cellCapacity:    entities.Quantity(cellCapacity),
		packagingWeight: decimal.NewFromFloat(packagingWeightKG),
	}
}

// ApplyMovement adds or subtracts stock at a (rack, cell) target and
// records the movement in the ledger. Validation happens before any
// mutation, so a failed movement leaves both grid and ledger untouched.
func (s *StockService) ApplyMovement(
	rackID entities.RackID,
	cellNo entities.CellNo,
	partNumber entities.PartNumber,
	qty entities.Quantity,
	action entities.Action,
	user string,
) (*entities.LedgerEntry, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d: %w", qty, entities.ErrInvalidQuantity)
	}
	if partNumber == "" {
		return nil, fmt.Errorf("part number cannot be empty: %w", entities.ErrInvalidInput)
	}
	if action != entities.ActionAdd && action != entities.ActionSubtract {
		return nil, fmt.Errorf("action %s is not a stock movement: %w", action, entities.ErrInvalidInput)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	rack, err := s.racks.GetRack(rackID)
	if err != nil {
		return nil, err
	}

	cell, err := rack.CellByNumber(cellNo)
	if err != nil {
		return nil, err
	}

	switch action {
	case entities.ActionAdd:
		if !cell.IsEmpty() && cell.PartNumber != partNumber {
			return nil, fmt.Errorf("rack %s cell %d holds %s: %w", rackID, cellNo, cell.PartNumber, entities.ErrPartMismatch)
		}
		if cell.Quantity+qty > s.cellCapacity {
			return nil, fmt.Errorf("rack %s cell %d: %d + %d exceeds capacity %d: %w",
				rackID, cellNo, cell.Quantity, qty, s.cellCapacity, entities.ErrCapacityExceeded)
		}

	case entities.ActionSubtract:
		if cell.PartNumber != partNumber {
			return nil, fmt.Errorf("rack %s cell %d does not hold %s: %w", rackID, cellNo, partNumber, entities.ErrPartMismatch)
		}
		if cell.Quantity < qty {
			return nil, fmt.Errorf("rack %s cell %d holds %d, cannot subtract %d: %w",
				rackID, cellNo, cell.Quantity, qty, entities.ErrInsufficientStock)
		}
	}

	// Append before mutating: a failing ledger leaves the grid untouched,
	// so grid and ledger never diverge regardless of the backing store.
	entry := entities.NewLedgerEntry(user, action, rackID, cellNo, partNumber, qty, "")
	if err := s.ledger.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append ledger entry: %w", err)
	}

	switch action {
	case entities.ActionAdd:
		cell.PartNumber = partNumber
		cell.Quantity += qty
	case entities.ActionSubtract:
		cell.Quantity -= qty
		if cell.Quantity == 0 {
			cell.PartNumber = ""
		}
	}
	return &entry, nil
}

// GetCell returns a read-only snapshot of one cell, including its
// computed weight
func (s *StockService) GetCell(rackID entities.RackID, cellNo entities.CellNo) (*dto.CellView, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rack, err := s.racks.GetRack(rackID)
	if err != nil {
		return nil, err
	}
	cell, err := rack.CellByNumber(cellNo)
	if err != nil {
		return nil, err
	}

	view := dto.CellView{
		Rack:       rackID,
		CellNo:     cellNo,
		PartNumber: cell.PartNumber,
		Quantity:   cell.Quantity,
		WeightKG:   s.cellWeight(*cell),
	}
	return &view, nil
}

// ListRackGrid returns every cell of a rack in cell-number order
func (s *StockService) ListRackGrid(rackID entities.RackID) ([]dto.CellView, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	rack, err := s.racks.GetRack(rackID)
	if err != nil {
		return nil, err
	}

	views := make([]dto.CellView, 0, rack.Spaces)
	for cellNo := entities.CellNo(1); int(cellNo) <= rack.Spaces; cellNo++ {
		cell, err := rack.CellByNumber(cellNo)
		if err != nil {
			return nil, err
		}
		views = append(views, dto.CellView{
			Rack:       rackID,
			CellNo:     cellNo,
			PartNumber: cell.PartNumber,
			Quantity:   cell.Quantity,
			WeightKG:   s.cellWeight(*cell),
		})
	}
	return views, nil
}

// RackShapes returns the configured rack shapes in identifier order
func (s *StockService) RackShapes() ([]dto.RackShape, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	racks, err := s.racks.AllRacks()
	if err != nil {
		return nil, err
	}

	shapes := make([]dto.RackShape, 0, len(racks))
	for _, rack := range racks {
		shapes = append(shapes, dto.RackShape{
			ID:     rack.ID,
			Rows:   rack.Rows,
			Cols:   rack.Cols,
			Spaces: rack.Spaces,
		})
	}
	return shapes, nil
}

// UpsertPart inserts or overwrites part master data and records the
// update in the ledger
func (s *StockService) UpsertPart(
	partNumber entities.PartNumber,
	weight decimal.Decimal,
	customer string,
	tubeLengthMM int,
	user string,
) error {
	part, err := entities.NewPart(partNumber, weight, customer, tubeLengthMM)
	if err != nil {
		return fmt.Errorf("invalid part: %w", err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.parts.Upsert(*part); err != nil {
		return err
	}

	entry := entities.NewLedgerEntry(user, entities.ActionMasterUpdate, "-", 0, partNumber, 0, "")
	if err := s.ledger.Append(entry); err != nil {
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}
	return nil
}

// BulkUpsertParts applies a batch of part master rows. The batch is
// all-or-nothing: one malformed row rejects the whole import.
func (s *StockService) BulkUpsertParts(parts []*entities.Part, user string) (int, error) {
	if len(parts) == 0 {
		return 0, fmt.Errorf("no rows to import: %w", entities.ErrImport)
	}
	for i, part := range parts {
		if part == nil {
			return 0, fmt.Errorf("row %d is missing: %w", i+1, entities.ErrImport)
		}
		if _, err := entities.NewPart(part.PartNumber, part.Weight, part.Customer, part.TubeLengthMM); err != nil {
			return 0, fmt.Errorf("row %d: %v: %w", i+1, err, entities.ErrImport)
		}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.parts.LoadParts(parts); err != nil {
		return 0, fmt.Errorf("%v: %w", err, entities.ErrImport)
	}

	for _, part := range parts {
		entry := entities.NewLedgerEntry(user, entities.ActionMasterUpdate, "-", 0, part.PartNumber, 0, "bulk import")
		if err := s.ledger.Append(entry); err != nil {
			return 0, fmt.Errorf("failed to append ledger entry: %w", err)
		}
	}
	return len(parts), nil
}

// FindFIFO scans the ledger oldest to newest for the first Add of the
// given part whose cell still holds that part, and returns the cell
// with its current quantity. Stale entries are skipped: the part may
// have been picked since, the rack may no longer be configured, or the
// recorded cell number may not resolve against the current shape.
func (s *StockService) FindFIFO(partNumber entities.PartNumber) (*dto.FIFOResult, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := s.ledger.OldestFirst()
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Action != entities.ActionAdd || entry.PartNumber != partNumber {
			continue
		}

		rack, err := s.racks.GetRack(entry.Rack)
		if err != nil {
			continue
		}
		cell, err := rack.CellByNumber(entry.CellNo)
		if err != nil {
			continue
		}
		if cell.PartNumber != partNumber || cell.Quantity == 0 {
			continue
		}

		return &dto.FIFOResult{
			Rack:     entry.Rack,
			CellNo:   entry.CellNo,
			Quantity: cell.Quantity,
		}, nil
	}

	return nil, fmt.Errorf("no stocked cell for part %s: %w", partNumber, entities.ErrNotFound)
}

// ListHistory returns the full movement ledger, newest first
func (s *StockService) ListHistory() ([]entities.LedgerEntry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.ledger.NewestFirst()
}

// TotalQuantity returns the summed quantity across every rack
func (s *StockService) TotalQuantity() (entities.Quantity, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	racks, err := s.racks.AllRacks()
	if err != nil {
		return 0, err
	}

	var total entities.Quantity
	for _, rack := range racks {
		total += rack.TotalQuantity()
	}
	return total, nil
}

// GridSnapshot returns the tabular grid projection across all racks,
// in rack then cell-number order, with weights rounded to 2 decimals
func (s *StockService) GridSnapshot() ([]dto.GridRow, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	racks, err := s.racks.AllRacks()
	if err != nil {
		return nil, err
	}

	var rows []dto.GridRow
	for _, rack := range racks {
		for cellNo := entities.CellNo(1); int(cellNo) <= rack.Spaces; cellNo++ {
			cell, err := rack.CellByNumber(cellNo)
			if err != nil {
				return nil, err
			}

			row := dto.GridRow{
				Rack:     rack.ID,
				CellNo:   cellNo,
				Quantity: cell.Quantity,
				WeightKG: s.cellWeight(*cell).Round(2),
			}
			if !cell.IsEmpty() {
				row.PartNumber = cell.PartNumber
				if part, err := s.parts.Get(cell.PartNumber); err == nil {
					row.Customer = part.Customer
					row.TubeLengthMM = part.TubeLengthMM
				}
			}
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// CatalogSnapshot returns the tabular part master projection
func (s *StockService) CatalogSnapshot() ([]dto.CatalogRow, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	parts, err := s.parts.GetAll()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.CatalogRow, 0, len(parts))
	for _, part := range parts {
		rows = append(rows, dto.CatalogRow{
			PartNumber:   part.PartNumber,
			WeightKG:     part.Weight,
			Customer:     part.Customer,
			TubeLengthMM: part.TubeLengthMM,
		})
	}
	return rows, nil
}

// HistorySnapshot returns the tabular ledger projection, newest first
func (s *StockService) HistorySnapshot() ([]dto.HistoryRow, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entries, err := s.ledger.NewestFirst()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.HistoryRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, dto.HistoryRow{
			Timestamp:  entry.Timestamp,
			User:       entry.User,
			Action:     entry.Action.String(),
			Rack:       entry.Rack,
			CellNo:     entry.CellNo,
			PartNumber: entry.PartNumber,
			Quantity:   entry.Quantity,
			Note:       entry.Note,
		})
	}
	return rows, nil
}

// cellWeight computes the display weight of a cell: quantity times the
// catalog unit weight plus the fixed packaging weight when occupied,
// zero when empty. A part missing from the catalog contributes zero
// unit weight but still carries the packaging weight.
func (s *StockService) cellWeight(cell entities.Cell) decimal.Decimal {
	if cell.IsEmpty() {
		return decimal.Zero
	}

	unitWeight := decimal.Zero
	if part, err := s.parts.Get(cell.PartNumber); err == nil {
		unitWeight = part.Weight
	}

	qty := decimal.NewFromInt(int64(cell.Quantity))
	return qty.Mul(unitWeight).Add(s.packagingWeight)
}
