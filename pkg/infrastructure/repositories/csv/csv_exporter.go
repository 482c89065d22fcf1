package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/rackline/stockboard/pkg/application/dto"
)

// timestampLayout matches the format shown on the stock board
const timestampLayout = "2006-01-02 15:04:05"

// Exporter writes the tabular snapshots (grid, part master, history)
// as CSV downloads
type Exporter struct{}

// NewExporter creates a new CSV exporter
func NewExporter() *Exporter {
	return &Exporter{}
}

// WriteGrid writes the rack grid snapshot in display order
func (e *Exporter) WriteGrid(w io.Writer, rows []dto.GridRow) error {
	writer := csv.NewWriter(w)

	header := []string{"rack", "cell", "part_number", "customer", "tube_length_mm", "quantity", "total_weight_kg"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write grid header: %w", err)
	}

	for _, row := range rows {
		tubeLength := ""
		if row.PartNumber != "" {
			tubeLength = strconv.Itoa(row.TubeLengthMM)
		}
		record := []string{
			string(row.Rack),
			strconv.Itoa(int(row.CellNo)),
			string(row.PartNumber),
			row.Customer,
			tubeLength,
			strconv.Itoa(int(row.Quantity)),
			row.WeightKG.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write grid row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteParts writes the part master snapshot
func (e *Exporter) WriteParts(w io.Writer, rows []dto.CatalogRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(partsHeader); err != nil {
		return fmt.Errorf("failed to write parts header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			string(row.PartNumber),
			row.WeightKG.String(),
			row.Customer,
			strconv.Itoa(row.TubeLengthMM),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write parts row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteHistory writes the movement ledger snapshot, newest first
func (e *Exporter) WriteHistory(w io.Writer, rows []dto.HistoryRow) error {
	writer := csv.NewWriter(w)

	header := []string{"timestamp", "user", "action", "rack", "cell", "part_number", "quantity", "note"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Timestamp.Format(timestampLayout),
			row.User,
			row.Action,
			string(row.Rack),
			strconv.Itoa(int(row.CellNo)),
			string(row.PartNumber),
			strconv.Itoa(int(row.Quantity)),
			row.Note,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
