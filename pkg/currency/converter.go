// Package currency converts client payments into the pricing currency.
package currency

import (
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/shopspring/decimal"
)

// Converter maps amounts in any accepted currency to dollars.
// It holds no mutable state and is safe to share.
type Converter struct {
	rate decimal.Decimal
}

// NewConverter returns a converter using the fixed shekel exchange rate.
func NewConverter() Converter {
	return Converter{rate: domain.ExchangeRate}
}

// Rate returns the shekel to dollar rate in use.
func (c Converter) Rate() decimal.Decimal {
	return c.rate
}

// Convert returns amount expressed in dollars.
func (c Converter) Convert(amount decimal.Decimal, cur domain.Currency) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	switch cur {
	case domain.CurrencyDollars:
		return amount, nil
	case domain.CurrencyShekels:
		return amount.Mul(c.rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, cur)
	}
}

// ParseAmount reads a cash amount typed by the client. Spaces are ignored.
func ParseAmount(raw string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	amount, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	if amount.IsZero() {
		return decimal.Zero, domain.ErrZeroAmount
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	return amount, nil
}

// ParseCurrency reads a currency token. It returns domain.ErrExit for the
// exit sentinel and domain.ErrUnknownCurrency for anything unrecognized.
func ParseCurrency(raw string) (domain.Currency, error) {
	token := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))
	if token == domain.ExitToken {
		return domain.CurrencyUnset, domain.ErrExit
	}
	cur := domain.Currency(token)
	if !cur.Valid() {
		return domain.CurrencyUnset, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, raw)
	}
	return cur, nil
}
