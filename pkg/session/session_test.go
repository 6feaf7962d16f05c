package session_test

import (
	"testing"

	"github.com/aretw0/vending/pkg/currency"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/inventory"
	"github.com/aretw0/vending/pkg/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession() *session.Session {
	return session.New(currency.NewConverter())
}

func TestSession_New(t *testing.T) {
	a, b := newSession(), newSession()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.Balance.IsZero())
	assert.Equal(t, domain.CurrencyUnset, a.Currency)
}

func TestSession_SelectCurrency(t *testing.T) {
	s := newSession()

	ok, err := s.SelectCurrency("invalid_currency")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
	assert.False(t, ok)
	assert.Equal(t, domain.CurrencyUnset, s.Currency)

	ok, err = s.SelectCurrency("dollars")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.CurrencyDollars, s.Currency)

	ok, err = s.SelectCurrency(" Shek els")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.CurrencyShekels, s.Currency)

	ok, err = s.SelectCurrency("EXIT")
	require.NoError(t, err)
	assert.False(t, ok, "exit is a distinct no-currency outcome")
	assert.Equal(t, domain.CurrencyShekels, s.Currency)
}

func TestSession_InsertCash(t *testing.T) {
	t.Run("requires currency", func(t *testing.T) {
		s := newSession()
		_, err := s.InsertCash("5", false)
		assert.ErrorIs(t, err, domain.ErrCurrencyUnset)
	})

	t.Run("dollars", func(t *testing.T) {
		s := newSession()
		_, _ = s.SelectCurrency("dollars")

		bal, err := s.InsertCash("5", false)
		require.NoError(t, err)
		assert.True(t, bal.Equal(decimal.NewFromInt(5)))
		assert.True(t, s.Balance.Equal(decimal.NewFromInt(5)))
	})

	t.Run("shekels are converted", func(t *testing.T) {
		s := newSession()
		_, _ = s.SelectCurrency("shekels")

		_, err := s.InsertCash("10", false)
		require.NoError(t, err)
		assert.Equal(t, "2.90", s.Balance.StringFixed(2))
	})

	t.Run("zero and garbage are rejected without side effects", func(t *testing.T) {
		s := newSession()
		_, _ = s.SelectCurrency("dollars")
		_, _ = s.InsertCash("3", false)

		_, err := s.InsertCash("0", false)
		assert.ErrorIs(t, err, domain.ErrZeroAmount)
		_, err = s.InsertCash("abc", true)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		assert.True(t, s.Balance.Equal(decimal.NewFromInt(3)))
	})

	t.Run("initial payment overwrites, top up adds", func(t *testing.T) {
		s := newSession()
		_, _ = s.SelectCurrency("dollars")
		_, _ = s.InsertCash("2", false)
		_, _ = s.InsertCash("4", false)
		assert.True(t, s.Balance.Equal(decimal.NewFromInt(4)))

		_, _ = s.SelectCurrency("shekels")
		bal, err := s.InsertCash("10", true)
		require.NoError(t, err)
		assert.Equal(t, "6.90", bal.StringFixed(2))
	})
}

func TestSession_SelectItem(t *testing.T) {
	store := inventory.NewDefault()
	s := newSession()

	err := s.SelectItem("invalid_item", store)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.Empty(t, s.Selected)

	require.NoError(t, s.SelectItem("Coca-Cola", store))
	assert.Equal(t, domain.ItemKey("coca-cola"), s.Selected)

	t.Run("sold out is rejected upstream of the engine", func(t *testing.T) {
		store.Decrement("doritos")
		err := s.SelectItem("doritos", store)
		assert.ErrorIs(t, err, domain.ErrItemUnavailable)
		assert.Equal(t, domain.ItemKey("coca-cola"), s.Selected)
	})

	t.Run("cancel", func(t *testing.T) {
		assert.ErrorIs(t, s.SelectItem(" Can cel ", store), domain.ErrCanceled)
	})
}

func TestSession_CancelAndSettle(t *testing.T) {
	s := newSession()
	_, _ = s.SelectCurrency("dollars")
	_, _ = s.InsertCash("7.25", false)

	refund := s.Cancel()
	assert.Equal(t, "7.25", refund.StringFixed(2))
	assert.True(t, s.Balance.IsZero())

	_, _ = s.InsertCash("1", false)
	s.Selected = "sprite"
	s.Settle()
	assert.True(t, s.Balance.IsZero())
	assert.Empty(t, s.Selected)
}
