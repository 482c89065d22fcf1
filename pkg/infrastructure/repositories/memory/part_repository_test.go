package memory

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/domain/entities"
)

func TestPartRepository_Upsert(t *testing.T) {
	repo := NewPartRepository(10)

	part := entities.Part{
		PartNumber:   "10283026",
		Weight:       decimal.NewFromFloat(8.05),
		Customer:     "Mahindra Pune",
		TubeLengthMM: 1254,
	}

	if err := repo.Upsert(part); err != nil {
		t.Fatalf("Failed to upsert part: %v", err)
	}

	retrieved, err := repo.Get("10283026")
	if err != nil {
		t.Fatalf("Failed to get part: %v", err)
	}

	if retrieved.Customer != "Mahindra Pune" {
		t.Errorf("Expected customer Mahindra Pune, got %s", retrieved.Customer)
	}
	if !retrieved.Weight.Equal(decimal.NewFromFloat(8.05)) {
		t.Errorf("Expected weight 8.05, got %s", retrieved.Weight)
	}
}

func TestPartRepository_Upsert_Overwrites(t *testing.T) {
	repo := NewPartRepository(10)

	first := entities.Part{PartNumber: "10291078", Weight: decimal.NewFromFloat(7.90), Customer: "Mahindra Pune", TubeLengthMM: 1245}
	if err := repo.Upsert(first); err != nil {
		t.Fatalf("Failed to upsert first version: %v", err)
	}

	second := entities.Part{PartNumber: "10291078", Weight: decimal.NewFromFloat(8.10), Customer: "Mahindra Nashik", TubeLengthMM: 1250}
	if err := repo.Upsert(second); err != nil {
		t.Fatalf("Failed to upsert second version: %v", err)
	}

	retrieved, err := repo.Get("10291078")
	if err != nil {
		t.Fatalf("Failed to get part: %v", err)
	}
	if retrieved.Customer != "Mahindra Nashik" {
		t.Errorf("Expected overwritten customer, got %s", retrieved.Customer)
	}
	if retrieved.TubeLengthMM != 1250 {
		t.Errorf("Expected overwritten tube length, got %d", retrieved.TubeLengthMM)
	}
}

func TestPartRepository_Get_NotFound(t *testing.T) {
	repo := NewPartRepository(10)

	_, err := repo.Get("NONEXISTENT")
	if err == nil {
		t.Fatal("Expected error for nonexistent part, got none")
	}
	if !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestPartRepository_GetAll_Sorted(t *testing.T) {
	repo := NewPartRepository(10)

	for _, pn := range []entities.PartNumber{"10291078", "10282069", "10283026"} {
		if err := repo.Upsert(entities.Part{PartNumber: pn, Weight: decimal.Zero}); err != nil {
			t.Fatalf("Failed to upsert %s: %v", pn, err)
		}
	}

	parts, err := repo.GetAll()
	if err != nil {
		t.Fatalf("Failed to get all parts: %v", err)
	}

	if len(parts) != 3 {
		t.Fatalf("Expected 3 parts, got %d", len(parts))
	}
	want := []entities.PartNumber{"10282069", "10283026", "10291078"}
	for i, pn := range want {
		if parts[i].PartNumber != pn {
			t.Errorf("Position %d: expected %s, got %s", i, pn, parts[i].PartNumber)
		}
	}
}

func TestPartRepository_LoadParts_BadRowRejectsBatch(t *testing.T) {
	repo := NewPartRepository(10)

	parts := []*entities.Part{
		{PartNumber: "10283026", Weight: decimal.NewFromFloat(8.05)},
		{PartNumber: "", Weight: decimal.NewFromFloat(7.90)},
	}

	err := repo.LoadParts(parts)
	if err == nil {
		t.Fatal("Expected error when loading batch with empty part number, got none")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("Expected error to name the failing row, got: %v", err)
	}

	// Nothing from the batch may have been applied
	if _, err := repo.Get("10283026"); err == nil {
		t.Error("Expected partial batch not to be applied")
	}
}
