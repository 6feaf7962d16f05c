package admin_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/vending/internal/testutils"
	"github.com/aretw0/vending/pkg/admin"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/inventory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultyInventory panics on every mutation.
type faultyInventory struct{}

func (faultyInventory) Reset()                         { panic("disk on fire") }
func (faultyInventory) NeedsPrice(domain.ItemKey) bool { return false }
func (faultyInventory) Refill(domain.ItemKey, int, *decimal.Decimal) (inventory.RefillResult, error) {
	panic("disk on fire")
}

func TestAdmin_Authenticate(t *testing.T) {
	a := admin.New(inventory.NewDefault())
	assert.True(t, a.Authenticate("admin123"))
	assert.False(t, a.Authenticate("admin123 "), "comparison is verbatim")
	assert.False(t, a.Authenticate("ADMIN123"))
	assert.False(t, a.Authenticate(""))

	custom := admin.New(inventory.NewDefault(), admin.WithPassword("s3cret"))
	assert.True(t, custom.Authenticate("s3cret"))
	assert.False(t, custom.Authenticate("admin123"))
}

func TestAdmin_ResetMachine(t *testing.T) {
	store := inventory.NewDefault()
	want := store.Snapshot()
	rec := &testutils.RecordingHooks{}
	a := admin.New(store, admin.WithHooks(rec.Hooks()))
	ctx := context.Background()

	store.Decrement("sprite")
	_, err := a.RefillStock(ctx, "coca-cola", "10", "")
	require.NoError(t, err)
	_, err = a.RefillStock(ctx, "water", "3", "1.25")
	require.NoError(t, err)

	assert.Equal(t, admin.MsgResetDone, a.ResetMachine(ctx))
	assert.Equal(t, want, store.Snapshot())
	assert.Len(t, rec.Resets, 1)
}

func TestAdmin_ResetMachine_SwallowsFaults(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	rec := &testutils.RecordingHooks{}
	a := admin.New(faultyInventory{}, admin.WithLogger(logger), admin.WithHooks(rec.Hooks()))

	var msg string
	assert.NotPanics(t, func() { msg = a.ResetMachine(context.Background()) })
	assert.Equal(t, admin.MsgResetDone, msg)
	assert.Contains(t, logs.String(), "disk on fire")
	assert.Empty(t, rec.Resets)
}

func TestAdmin_RefillStock(t *testing.T) {
	ctx := context.Background()

	t.Run("existing item keeps price", func(t *testing.T) {
		store := inventory.NewDefault()
		a := admin.New(store)

		assert.False(t, a.NeedsPrice("Sprite"))
		res, err := a.RefillStock(ctx, "Sprite", " 5 ", "ignored")
		require.NoError(t, err)

		item, _ := store.Get("sprite")
		assert.Equal(t, 15, item.Quantity)
		assert.Equal(t, "3.50", item.Price.StringFixed(2))
		assert.Equal(t, "Stock for Sprite has been refilled (+5 units).", admin.RefillMessage(res))
	})

	t.Run("new item", func(t *testing.T) {
		store := inventory.NewDefault()
		rec := &testutils.RecordingHooks{}
		a := admin.New(store, admin.WithHooks(rec.Hooks()))
		before := store.Snapshot()

		assert.True(t, a.NeedsPrice("new-item"))
		res, err := a.RefillStock(ctx, "new-item", "5", "2.0")
		require.NoError(t, err)

		after := store.Snapshot()
		assert.Equal(t, before, after[:len(before)])
		item, ok := store.Get("new-item")
		require.True(t, ok)
		assert.Equal(t, 5, item.Quantity)
		assert.True(t, item.Price.Equal(decimal.NewFromInt(2)))
		assert.Equal(t, "New item New-Item has been added to the inventory with a quantity of 5 and a price of $2.00.",
			admin.RefillMessage(res))
		require.Len(t, rec.Refills, 1)
		assert.True(t, rec.Refills[0].NewItem)
	})

	t.Run("zero stock item is treated as new", func(t *testing.T) {
		store := inventory.NewDefault()
		store.Decrement("doritos")
		a := admin.New(store)

		assert.True(t, a.NeedsPrice("doritos"))
		res, err := a.RefillStock(ctx, "doritos", "4", "3.10")
		require.NoError(t, err)
		assert.True(t, res.NewItem)
		assert.Equal(t, "3.10", store.LookupPrice("doritos").StringFixed(2))
	})

	tests := []struct {
		name     string
		item     string
		quantity string
		price    string
	}{
		{"non numeric quantity", "sprite", "invalid", ""},
		{"fractional quantity", "sprite", "1.5", ""},
		{"negative quantity", "sprite", "-2", ""},
		{"bad price for new item", "new-item", "5", "cheap"},
		{"zero price for new item", "new-item", "5", "0"},
		{"missing price for new item", "new-item", "5", ""},
		{"blank item", "  ", "5", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := inventory.NewDefault()
			rec := &testutils.RecordingHooks{}
			a := admin.New(store, admin.WithHooks(rec.Hooks()))
			before := store.Snapshot()

			_, err := a.RefillStock(ctx, tt.item, tt.quantity, tt.price)

			assert.ErrorIs(t, err, domain.ErrInvalidRefill)
			assert.Equal(t, before, store.Snapshot(), "refill must be atomic")
			assert.Empty(t, rec.Refills)
		})
	}
}

func TestAdmin_RefillStock_InternalFault(t *testing.T) {
	var logs bytes.Buffer
	a := admin.New(faultyInventory{}, admin.WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	_, err := a.RefillStock(context.Background(), "sprite", "1", "")

	assert.ErrorIs(t, err, admin.ErrInternal)
	assert.Contains(t, logs.String(), "Error in refilling stock")
}
