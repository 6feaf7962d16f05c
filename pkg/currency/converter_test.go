package currency_test

import (
	"testing"

	"github.com/aretw0/vending/pkg/currency"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	conv := currency.NewConverter()

	for _, raw := range []string{"0.01", "1", "5", "10", "123.45", "1000000"} {
		amount := decimal.RequireFromString(raw)

		usd, err := conv.Convert(amount, domain.CurrencyDollars)
		require.NoError(t, err)
		assert.True(t, usd.Equal(amount), "dollars pass through: %s", raw)

		ils, err := conv.Convert(amount, domain.CurrencyShekels)
		require.NoError(t, err)
		assert.True(t, ils.Equal(amount.Mul(decimal.RequireFromString("0.29"))), "shekels scaled: %s -> %s", raw, ils)
	}

	t.Run("ten shekels", func(t *testing.T) {
		got, err := conv.Convert(decimal.NewFromInt(10), domain.CurrencyShekels)
		require.NoError(t, err)
		assert.Equal(t, "2.9", got.String())
	})

	t.Run("rejects non-positive", func(t *testing.T) {
		_, err := conv.Convert(decimal.Zero, domain.CurrencyDollars)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = conv.Convert(decimal.NewFromInt(-3), domain.CurrencyShekels)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})

	t.Run("rejects unset currency", func(t *testing.T) {
		_, err := conv.Convert(decimal.NewFromInt(1), domain.CurrencyUnset)
		assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
	})
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{raw: "5", want: "5"},
		{raw: " 1 0 ", want: "10"},
		{raw: "2.75", want: "2.75"},
		{raw: "0", wantErr: domain.ErrZeroAmount},
		{raw: "0.00", wantErr: domain.ErrZeroAmount},
		{raw: "-1", wantErr: domain.ErrInvalidAmount},
		{raw: "five", wantErr: domain.ErrInvalidAmount},
		{raw: "", wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := currency.ParseAmount(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	cur, err := currency.ParseCurrency(" Dol lars ")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyDollars, cur)

	cur, err = currency.ParseCurrency("SHEKELS")
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyShekels, cur)

	_, err = currency.ParseCurrency("Exit")
	assert.ErrorIs(t, err, domain.ErrExit)

	_, err = currency.ParseCurrency("euros")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}
