package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Action represents the kind of a ledger entry
type Action int

const (
	ActionAdd Action = iota
	ActionSubtract
	ActionMasterUpdate
)

// String method for Action enum
func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "Add"
	case ActionSubtract:
		return "Subtract"
	case ActionMasterUpdate:
		return "MasterUpdate"
	default:
		return "Unknown"
	}
}

// ParseAction converts a textual action kind to an Action
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "add":
		return ActionAdd, nil
	case "subtract":
		return ActionSubtract, nil
	case "masterupdate":
		return ActionMasterUpdate, nil
	default:
		return ActionAdd, fmt.Errorf("invalid action: %s (expected: Add, Subtract, or MasterUpdate)", s)
	}
}

// LedgerEntry records a single stock movement or master-data update.
// Entries are immutable once created; the ledger is append-only.
type LedgerEntry struct {
	ID         uuid.UUID
	Timestamp  time.Time
	User       string
	Action     Action
	Rack       RackID
	CellNo     CellNo
	PartNumber PartNumber
	Quantity   Quantity
	Note       string
}

// NewLedgerEntry creates a ledger entry stamped with the current time
func NewLedgerEntry(user string, action Action, rack RackID, cellNo CellNo, partNumber PartNumber, quantity Quantity, note string) LedgerEntry {
	return LedgerEntry{
		ID:         uuid.New(),
		Timestamp:  time.Now(),
		User:       user,
		Action:     action,
		Rack:       rack,
		CellNo:     cellNo,
		PartNumber: partNumber,
		Quantity:   quantity,
		Note:       note,
	}
}
