package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSale        EventType = "sale"
	EventUnderfunded EventType = "underfunded"
	EventDirective   EventType = "directive"
	EventRefund      EventType = "refund"
	EventReset       EventType = "reset"
	EventRefill      EventType = "refill"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
}

// SaleEvent is emitted after stock was decremented for a purchase.
type SaleEvent struct {
	EventBase
	Receipt Receipt         `json:"receipt"`
	Balance decimal.Decimal `json:"balance"`
}

// UnderfundedEvent is emitted when the balance does not cover the price.
type UnderfundedEvent struct {
	EventBase
	Item      ItemKey         `json:"item"`
	Balance   decimal.Decimal `json:"balance"`
	Shortfall decimal.Decimal `json:"shortfall"`
}

// DirectiveEvent is emitted when an underfunded client picks a recovery path.
type DirectiveEvent struct {
	EventBase
	Item      ItemKey   `json:"item"`
	Directive Directive `json:"directive"`
}

// RefundEvent is emitted when a canceled transaction returns the balance.
type RefundEvent struct {
	EventBase
	Amount decimal.Decimal `json:"amount"`
}

// InventoryEvent is emitted by administrative operations.
type InventoryEvent struct {
	EventBase
	Item     ItemKey         `json:"item,omitempty"`
	Quantity int             `json:"quantity,omitempty"`
	Price    decimal.Decimal `json:"price"`
	NewItem  bool            `json:"new_item,omitempty"`
}

// LifecycleHooks defines callbacks for machine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnSale        func(context.Context, *SaleEvent)
	OnUnderfunded func(context.Context, *UnderfundedEvent)
	OnDirective   func(context.Context, *DirectiveEvent)
	OnRefund      func(context.Context, *RefundEvent)
	OnReset       func(context.Context, *InventoryEvent)
	OnRefill      func(context.Context, *InventoryEvent)
}

// MergeHooks chains several hook sets; callbacks run in argument order.
func MergeHooks(all ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range all {
		merged.OnSale = chain(merged.OnSale, h.OnSale)
		merged.OnUnderfunded = chain(merged.OnUnderfunded, h.OnUnderfunded)
		merged.OnDirective = chain(merged.OnDirective, h.OnDirective)
		merged.OnRefund = chain(merged.OnRefund, h.OnRefund)
		merged.OnReset = chain(merged.OnReset, h.OnReset)
		merged.OnRefill = chain(merged.OnRefill, h.OnRefill)
	}
	return merged
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}

// NewBase stamps an event header with the current time.
func NewBase(t EventType, sessionID string) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t, SessionID: sessionID}
}
