package domain

import "github.com/shopspring/decimal"

// Directive is the client's answer when the balance does not cover the price.
type Directive string

const (
	DirectiveCash    Directive = "cash"    // insert more money
	DirectiveAnother Directive = "another" // pick a different item
	DirectiveCancel  Directive = "cancel"  // abort and refund
)

// OutcomeKind tags the variant held by an Outcome.
type OutcomeKind int

const (
	// OutcomeUnavailable: the item is unknown to the store. Nothing changed.
	OutcomeUnavailable OutcomeKind = iota
	// OutcomeSale: the item was dispensed. Receipt is set.
	OutcomeSale
	// OutcomeUnderfunded: the balance is short. Shortfall is set. Nothing changed.
	OutcomeUnderfunded
	// OutcomeDirective: the client resolved an underfunded attempt. Directive is set.
	OutcomeDirective
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeSale:
		return "sale"
	case OutcomeUnderfunded:
		return "underfunded"
	case OutcomeDirective:
		return "directive"
	}
	return "unknown"
}

// Receipt describes a completed sale. Amounts are rounded to cents.
type Receipt struct {
	Item    ItemKey         `json:"item"`
	Display string          `json:"display"`
	Price   decimal.Decimal `json:"price"`
	Change  decimal.Decimal `json:"change"`
}

// Outcome is the result of a purchase attempt.
type Outcome struct {
	Kind      OutcomeKind
	Item      ItemKey
	Receipt   Receipt
	Shortfall decimal.Decimal
	Directive Directive
}
