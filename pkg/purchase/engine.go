// Package purchase decides whether a client can buy the selected item and
// applies the sale.
//
// A purchase attempt ends in exactly one of three ways: a Sale that removes one
// unit of stock, an Unavailable verdict for items unknown to the store, or an
// Underfunded verdict that the client must resolve with a directive (cash,
// another, cancel). Only a Sale mutates the inventory; balances are never
// touched here.
package purchase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/shopspring/decimal"
)

// Operator facing messages.
const (
	PromptDirective = "Insufficient funds. Do you want to insert more cash, select another item, " +
		"or cancel the transaction? (Type 'cash'/'another'/'cancel'): "
	MsgInvalidDirective = "Invalid choice. Please enter 'cash', 'another', or 'cancel'."
	MsgUnavailable      = "Selected item not available."
)

// Stock is the inventory surface the engine depends on.
type Stock interface {
	LookupPrice(key domain.ItemKey) decimal.Decimal
	Decrement(key domain.ItemKey)
}

// Engine runs the purchase state machine against a stock.
type Engine struct {
	stock  Stock
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithHooks registers lifecycle hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an engine selling from stock.
func NewEngine(stock Stock, opts ...Option) *Engine {
	e := &Engine{
		stock:  stock,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Confirm performs a single affordability check.
// balance must already be expressed in dollars.
func (e *Engine) Confirm(ctx context.Context, balance decimal.Decimal, key domain.ItemKey) domain.Outcome {
	price := e.stock.LookupPrice(key)
	if !price.IsPositive() {
		e.logger.Debug("item unavailable", "item", key)
		return domain.Outcome{Kind: domain.OutcomeUnavailable, Item: key}
	}

	if balance.LessThan(price) {
		shortfall := price.Sub(balance)
		e.logger.Debug("underfunded", "item", key, "balance", balance, "price", price)
		if e.hooks.OnUnderfunded != nil {
			e.hooks.OnUnderfunded(ctx, &domain.UnderfundedEvent{
				EventBase: domain.NewBase(domain.EventUnderfunded, domain.SessionFromContext(ctx)),
				Item:      key,
				Balance:   balance,
				Shortfall: shortfall,
			})
		}
		return domain.Outcome{Kind: domain.OutcomeUnderfunded, Item: key, Shortfall: shortfall}
	}

	e.stock.Decrement(key)
	receipt := domain.Receipt{
		Item:    key,
		Display: key.DisplayName(),
		Price:   price.Round(2),
		Change:  balance.Sub(price).Round(2),
	}
	e.logger.Debug("sale", "item", key, "price", receipt.Price, "change", receipt.Change)
	if e.hooks.OnSale != nil {
		e.hooks.OnSale(ctx, &domain.SaleEvent{
			EventBase: domain.NewBase(domain.EventSale, domain.SessionFromContext(ctx)),
			Receipt:   receipt,
			Balance:   balance,
		})
	}
	return domain.Outcome{Kind: domain.OutcomeSale, Item: key, Receipt: receipt}
}

// Checkout runs the full purchase state machine. When the balance is short it
// keeps asking p for a directive until a valid one is given; the balance is
// not re-checked in between since it cannot change inside this call.
// The returned error is non-nil only when p fails.
func (e *Engine) Checkout(ctx context.Context, balance decimal.Decimal, key domain.ItemKey, p ports.Prompter) (domain.Outcome, error) {
	out := e.Confirm(ctx, balance, key)
	if out.Kind != domain.OutcomeUnderfunded {
		return out, nil
	}

	for {
		raw, err := p.Ask(ctx, PromptDirective)
		if err != nil {
			return out, err
		}

		directive, err := ParseDirective(raw)
		if err != nil {
			if err := p.Say(ctx, MsgInvalidDirective); err != nil {
				return out, err
			}
			continue
		}

		if e.hooks.OnDirective != nil {
			e.hooks.OnDirective(ctx, &domain.DirectiveEvent{
				EventBase: domain.NewBase(domain.EventDirective, domain.SessionFromContext(ctx)),
				Item:      key,
				Directive: directive,
			})
		}
		return domain.Outcome{
			Kind:      domain.OutcomeDirective,
			Item:      key,
			Shortfall: out.Shortfall,
			Directive: directive,
		}, nil
	}
}

// ParseDirective reads the client's answer to an underfunded attempt.
// All spaces are removed and case is ignored.
func ParseDirective(raw string) (domain.Directive, error) {
	token := domain.Directive(strings.ToLower(strings.Join(strings.Fields(raw), "")))
	switch token {
	case domain.DirectiveCash, domain.DirectiveAnother, domain.DirectiveCancel:
		return token, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrInvalidDirective, raw)
}

// ConfirmationMessage renders the receipt the way the machine prints it.
func ConfirmationMessage(r domain.Receipt) string {
	return fmt.Sprintf("Purchase confirmed! You bought %s for %s. Your change is %s.",
		r.Display, domain.FormatMoney(r.Price), domain.FormatMoney(r.Change))
}
