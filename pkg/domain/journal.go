package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a journal entry.
type EntryKind string

const (
	EntrySale   EntryKind = "sale"
	EntryRefund EntryKind = "refund"
	EntryReset  EntryKind = "reset"
	EntryRefill EntryKind = "refill"
)

// Entry is one line of the machine's audit trail.
type Entry struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id,omitempty"`
	Kind      EntryKind       `json:"kind"`
	Item      ItemKey         `json:"item,omitempty"`
	Quantity  int             `json:"quantity,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Change    decimal.Decimal `json:"change"`
	At        time.Time       `json:"at"`
}
