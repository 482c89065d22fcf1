package csv

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/application/dto"
)

func TestWriteGrid(t *testing.T) {
	exporter := NewExporter()

	rows := []dto.GridRow{
		{Rack: "A", CellNo: 1, PartNumber: "10283026", Customer: "Mahindra Pune", TubeLengthMM: 1254, Quantity: 3, WeightKG: decimal.NewFromFloat(49.15)},
		{Rack: "A", CellNo: 2, Quantity: 0, WeightKG: decimal.Zero},
	}

	var buf bytes.Buffer
	if err := exporter.WriteGrid(&buf, rows); err != nil {
		t.Fatalf("Failed to write grid: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "rack,cell,part_number,customer,tube_length_mm,quantity,total_weight_kg" {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "A,1,10283026,Mahindra Pune,1254,3,49.15" {
		t.Errorf("Unexpected occupied row: %s", lines[1])
	}
	// Empty cells carry no master data columns
	if lines[2] != "A,2,,,,0,0.00" {
		t.Errorf("Unexpected empty row: %s", lines[2])
	}
}

func TestWriteParts_RoundTripsThroughLoader(t *testing.T) {
	exporter := NewExporter()
	loader := NewLoader()

	rows := []dto.CatalogRow{
		{PartNumber: "10283026", WeightKG: decimal.NewFromFloat(8.05), Customer: "Mahindra Pune", TubeLengthMM: 1254},
		{PartNumber: "10291078", WeightKG: decimal.NewFromFloat(7.9), Customer: "Mahindra Pune", TubeLengthMM: 1245},
	}

	var buf bytes.Buffer
	if err := exporter.WriteParts(&buf, rows); err != nil {
		t.Fatalf("Failed to write parts: %v", err)
	}

	parts, err := loader.ParseParts(&buf)
	if err != nil {
		t.Fatalf("Exported parts CSV not loadable: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(parts))
	}
	if parts[0].PartNumber != "10283026" || !parts[0].Weight.Equal(decimal.NewFromFloat(8.05)) {
		t.Errorf("Unexpected round-tripped part: %+v", parts[0])
	}
}

func TestWriteHistory(t *testing.T) {
	exporter := NewExporter()

	ts := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	rows := []dto.HistoryRow{
		{Timestamp: ts, User: "kittu", Action: "Add", Rack: "A", CellNo: 3, PartNumber: "10283026", Quantity: 5},
	}

	var buf bytes.Buffer
	if err := exporter.WriteHistory(&buf, rows); err != nil {
		t.Fatalf("Failed to write history: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[1] != "2026-08-31 14:30:00,kittu,Add,A,3,10283026,5," {
		t.Errorf("Unexpected history row: %s", lines[1])
	}
}
