package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunJournalContract runs a suite of tests to verify that a Journal implementation
// adheres to the defined interface contract. The journal must start empty.
func RunJournalContract(t *testing.T, journal Journal) {
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Empty", func(t *testing.T) {
		entries, err := journal.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Record and List", func(t *testing.T) {
		sale := domain.Entry{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Kind:      domain.EntrySale,
			Item:      "sprite",
			Quantity:  1,
			Amount:    decimal.RequireFromString("3.50"),
			Change:    decimal.RequireFromString("1.50"),
			At:        time.Now().UTC().Truncate(time.Second),
		}
		refund := domain.Entry{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Kind:      domain.EntryRefund,
			Amount:    decimal.RequireFromString("2.00"),
			At:        time.Now().UTC().Truncate(time.Second),
		}

		require.NoError(t, journal.Record(ctx, sale), "Record should not return error")
		require.NoError(t, journal.Record(ctx, refund))

		entries, err := journal.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		assert.Equal(t, sale.ID, entries[0].ID, "entries must keep insertion order")
		assert.Equal(t, domain.EntrySale, entries[0].Kind)
		assert.Equal(t, domain.ItemKey("sprite"), entries[0].Item)
		assert.True(t, sale.Amount.Equal(entries[0].Amount))
		assert.True(t, sale.Change.Equal(entries[0].Change))
		assert.True(t, sale.At.Equal(entries[0].At))

		assert.Equal(t, refund.ID, entries[1].ID)
		assert.Equal(t, domain.EntryRefund, entries[1].Kind)
	})
}
