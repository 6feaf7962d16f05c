package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is the currency a client pays in.
type Currency string

const (
	CurrencyUnset   Currency = ""
	CurrencyDollars Currency = "dollars" // pricing currency
	CurrencyShekels Currency = "shekels"
)

// ExitToken ends the customer session when typed at the currency prompt.
const ExitToken = "exit"

// Valid reports whether c is one of the accepted payment currencies.
func (c Currency) Valid() bool {
	return c == CurrencyDollars || c == CurrencyShekels
}

// FormatMoney renders an amount in the pricing currency, e.g. "$3.50".
func FormatMoney(amount decimal.Decimal) string {
	return fmt.Sprintf("$%s", amount.StringFixed(2))
}
