package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/domain/entities"
)

// Loader handles loading part master data from CSV
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// partsHeader is the required part master column layout
var partsHeader = []string{"part_number", "weight_kg", "customer", "tube_length_mm"}

// ParseParts reads part master rows from an uploaded CSV stream. A
// malformed row rejects the whole input.
func (l *Loader) ParseParts(r io.Reader) ([]*entities.Part, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read parts CSV: %v: %w", err, entities.ErrImport)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("parts CSV must have header and at least one data row: %w", entities.ErrImport)
	}

	header := records[0]
	if !validateHeader(header, partsHeader) {
		return nil, fmt.Errorf("parts CSV header mismatch. Expected: %v, Got: %v: %w", partsHeader, header, entities.ErrImport)
	}

	var parts []*entities.Part
	for i, record := range records[1:] {
		if len(record) != len(partsHeader) {
			return nil, fmt.Errorf("parts CSV row %d: expected %d columns, got %d: %w", i+2, len(partsHeader), len(record), entities.ErrImport)
		}

		part, err := parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %v: %w", i+2, err, entities.ErrImport)
		}

		parts = append(parts, part)
	}

	return parts, nil
}

// LoadParts loads part master data from a CSV file
func (l *Loader) LoadParts(filename string) ([]*entities.Part, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()

	return l.ParseParts(file)
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parsePart(record []string) (*entities.Part, error) {
	partNumber := entities.PartNumber(strings.TrimSpace(record[0]))

	weight, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid weight_kg: %s", record[1])
	}

	customer := strings.TrimSpace(record[2])

	tubeLength, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid tube_length_mm: %s", record[3])
	}

	return entities.NewPart(partNumber, weight, customer, tubeLength)
}
