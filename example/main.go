package main

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rackline/stockboard/pkg/application/services"
	"github.com/rackline/stockboard/pkg/domain/entities"
	"github.com/rackline/stockboard/pkg/infrastructure/repositories/memory"
)

func main() {
	// Build the shop floor: two racks, 3 rows each
	rackRepo, err := memory.NewRackRepository(map[entities.RackID]int{
		"A": 9,
		"B": 15,
	}, 3)
	if err != nil {
		fmt.Printf("Failed to build racks: %v\n", err)
		return
	}

	partRepo := memory.NewPartRepository(8)
	ledgerRepo := memory.NewLedgerRepository()
	stock := services.NewStockService(rackRepo, partRepo, ledgerRepo, 25, 25.0)

	// Register part master data
	if err := stock.UpsertPart("10283026", decimal.NewFromFloat(8.05), "Mahindra Pune", 1254, "vishal"); err != nil {
		fmt.Printf("Upsert failed: %v\n", err)
		return
	}

	// Receive stock into two cells, oldest first
	moves := []struct {
		cellNo entities.CellNo
		qty    entities.Quantity
	}{
		{1, 5},
		{2, 5},
	}
	for _, move := range moves {
		if _, err := stock.ApplyMovement("A", move.cellNo, "10283026", move.qty, entities.ActionAdd, "kittu"); err != nil {
			fmt.Printf("Add failed: %v\n", err)
			return
		}
	}

	// Pick everything from the oldest cell
	if _, err := stock.ApplyMovement("A", 1, "10283026", 5, entities.ActionSubtract, "kittu"); err != nil {
		fmt.Printf("Subtract failed: %v\n", err)
		return
	}

	// The locator skips the emptied cell and points at the next oldest
	result, err := stock.FindFIFO("10283026")
	if err != nil {
		fmt.Printf("FIFO lookup failed: %v\n", err)
		return
	}
	fmt.Printf("FIFO pick: Rack %s Cell %d (Qty: %d)\n", result.Rack, result.CellNo, result.Quantity)

	view, err := stock.GetCell(result.Rack, result.CellNo)
	if err != nil {
		fmt.Printf("Cell lookup failed: %v\n", err)
		return
	}
	fmt.Printf("Cell weight: %s kg\n", view.WeightKG)

	history, err := stock.ListHistory()
	if err != nil {
		fmt.Printf("History lookup failed: %v\n", err)
		return
	}
	fmt.Printf("Ledger entries: %d (newest: %s %s at %s cell %d)\n",
		len(history),
		history[0].Action,
		history[0].PartNumber,
		history[0].Rack,
		history[0].CellNo)
}
