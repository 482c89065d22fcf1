package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/domain/entities"
)

// CellView is a read-only snapshot of a single cell
type CellView struct {
	Rack       entities.RackID     `json:"rack"`
	CellNo     entities.CellNo     `json:"cell"`
	PartNumber entities.PartNumber `json:"part_number,omitempty"`
	Quantity   entities.Quantity   `json:"quantity"`
	WeightKG   decimal.Decimal     `json:"weight_kg"`
}

// FIFOResult names the oldest stocked cell still holding a part. The
// quantity is the cell's current holding, not the historical add amount.
type FIFOResult struct {
	Rack     entities.RackID   `json:"rack"`
	CellNo   entities.CellNo   `json:"cell"`
	Quantity entities.Quantity `json:"quantity"`
}

// GridRow is one row of the tabular rack grid export, in the bottom-up
// cell order displayed to users
type GridRow struct {
	Rack         entities.RackID     `json:"rack"`
	CellNo       entities.CellNo     `json:"cell"`
	PartNumber   entities.PartNumber `json:"part_number,omitempty"`
	Customer     string              `json:"customer,omitempty"`
	TubeLengthMM int                 `json:"tube_length_mm,omitempty"`
	Quantity     entities.Quantity   `json:"quantity"`
	WeightKG     decimal.Decimal     `json:"total_weight_kg"`
}

// CatalogRow is one row of the part master export
type CatalogRow struct {
	PartNumber   entities.PartNumber `json:"part_number"`
	WeightKG     decimal.Decimal     `json:"weight_kg"`
	Customer     string              `json:"customer"`
	TubeLengthMM int                 `json:"tube_length_mm"`
}

// HistoryRow is one row of the movement ledger export, newest first
type HistoryRow struct {
	Timestamp  time.Time           `json:"timestamp"`
	User       string              `json:"user"`
	Action     string              `json:"action"`
	Rack       entities.RackID     `json:"rack"`
	CellNo     entities.CellNo     `json:"cell"`
	PartNumber entities.PartNumber `json:"part_number"`
	Quantity   entities.Quantity   `json:"quantity"`
	Note       string              `json:"note,omitempty"`
}

// RackShape describes a configured rack for presentation callers
type RackShape struct {
	ID     entities.RackID `json:"id"`
	Rows   int             `json:"rows"`
	Cols   int             `json:"cols"`
	Spaces int             `json:"spaces"`
}
