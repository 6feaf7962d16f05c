package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/currency"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancelToken aborts the transaction at the item prompt.
const CancelToken = "cancel"

// Catalog is the part of the inventory a session needs to validate a selection.
type Catalog interface {
	Available(key domain.ItemKey) bool
}

// Session is one client's payment state. Balance is always in dollars.
type Session struct {
	ID       string
	Balance  decimal.Decimal
	Currency domain.Currency
	Selected domain.ItemKey

	converter currency.Converter
}

// New starts an empty session.
func New(conv currency.Converter) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Balance:   decimal.Zero,
		converter: conv,
	}
}

// SelectCurrency applies a currency token. It returns false with a nil error
// when the client typed the exit sentinel; the caller should end the session.
// Unrecognized tokens return domain.ErrUnknownCurrency and change nothing.
func (s *Session) SelectCurrency(raw string) (bool, error) {
	cur, err := currency.ParseCurrency(raw)
	if errors.Is(err, domain.ErrExit) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	s.Currency = cur
	return true, nil
}

// InsertCash reads an amount in the selected currency and applies it.
// With topUp the converted amount is added to the balance, otherwise it
// replaces it. Errors are recoverable and leave the balance untouched.
func (s *Session) InsertCash(raw string, topUp bool) (decimal.Decimal, error) {
	if !s.Currency.Valid() {
		return s.Balance, domain.ErrCurrencyUnset
	}

	amount, err := currency.ParseAmount(raw)
	if err != nil {
		return s.Balance, err
	}
	converted, err := s.converter.Convert(amount, s.Currency)
	if err != nil {
		return s.Balance, err
	}

	if topUp {
		s.Balance = s.Balance.Add(converted)
	} else {
		s.Balance = converted
	}
	return s.Balance, nil
}

// SelectItem validates the client's choice against the catalog.
// It returns domain.ErrCanceled for the cancel token and
// domain.ErrItemUnavailable for unknown or sold out items.
func (s *Session) SelectItem(raw string, catalog Catalog) error {
	if strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), " ", "")) == CancelToken {
		return domain.ErrCanceled
	}

	key, err := domain.NewItemKey(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrItemUnavailable, err)
	}
	if !catalog.Available(key) {
		return fmt.Errorf("%w: %s", domain.ErrItemUnavailable, key)
	}
	s.Selected = key
	return nil
}

// Cancel refunds the balance and returns the refunded amount.
func (s *Session) Cancel() decimal.Decimal {
	refund := s.Balance
	s.Balance = decimal.Zero
	s.Selected = ""
	return refund
}

// Settle clears the session after a sale; the change has been handed out.
func (s *Session) Settle() {
	s.Balance = decimal.Zero
	s.Selected = ""
}
