package ports

import (
	"context"

	"github.com/aretw0/vending/pkg/domain"
)

// Journal records the machine's transactions as an audit trail.
// It is append-only; the inventory is never rebuilt from it.
type Journal interface {
	// Record appends an entry.
	Record(ctx context.Context, entry domain.Entry) error

	// List returns every recorded entry, oldest first.
	List(ctx context.Context) ([]domain.Entry, error)
}
