package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PartNumber represents a unique part identifier
type PartNumber string

// Quantity represents an integer piece count
type Quantity int

// Part holds the master data for a part number
type Part struct {
	PartNumber   PartNumber
	Weight       decimal.Decimal // unit weight in kg
	Customer     string
	TubeLengthMM int
}

// NewPart creates a validated Part
func NewPart(partNumber PartNumber, weight decimal.Decimal, customer string, tubeLengthMM int) (*Part, error) {
	if string(partNumber) == "" {
		return nil, fmt.Errorf("part number cannot be empty")
	}
	if weight.IsNegative() {
		return nil, fmt.Errorf("unit weight cannot be negative, got %s", weight)
	}
	if tubeLengthMM < 0 {
		return nil, fmt.Errorf("tube length cannot be negative, got %d", tubeLengthMM)
	}

	return &Part{
		PartNumber:   partNumber,
		Weight:       weight,
		Customer:     customer,
		TubeLengthMM: tubeLengthMM,
	}, nil
}
