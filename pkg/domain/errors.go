package domain

import "errors"

// Recoverable input errors. Callers report them and ask again.
var (
	// ErrInvalidAmount is returned when a cash amount is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrZeroAmount is returned when the inserted amount is zero.
	ErrZeroAmount = errors.New("inserted amount cannot be zero")

	// ErrUnknownCurrency is returned for a currency token other than dollars or shekels.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyUnset is returned when cash is inserted before a currency was chosen.
	ErrCurrencyUnset = errors.New("currency not selected")

	// ErrInvalidDirective is returned when an underfunded client answers something
	// other than cash, another or cancel.
	ErrInvalidDirective = errors.New("invalid directive")

	// ErrItemUnavailable is returned when the selected item is unknown or out of stock.
	ErrItemUnavailable = errors.New("item not available")

	// ErrInvalidItemKey is returned when an item name is empty after normalization.
	ErrInvalidItemKey = errors.New("invalid item name")
)

// Flow sentinels. These are not failures; they end the current prompt loop.
var (
	// ErrExit signals that the client typed the exit sentinel.
	ErrExit = errors.New("exit requested")

	// ErrCanceled signals that the client aborted the transaction.
	ErrCanceled = errors.New("transaction canceled")
)

// Administrative errors.
var (
	// ErrInvalidRefill is returned when the quantity or price of a refill cannot be parsed.
	// No part of the refill is applied.
	ErrInvalidRefill = errors.New("invalid input for quantity or price")

	// ErrPriceRequired is returned when a new or zero-stock item is refilled without a price.
	ErrPriceRequired = errors.New("price required for new item")

	// ErrAuthFailed is returned when the administrator password does not match.
	ErrAuthFailed = errors.New("authentication failed")
)
