// Package admin implements the password protected maintenance operations.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/inventory"
	"github.com/shopspring/decimal"
)

// Operator facing messages.
const (
	MsgResetting     = "Administrator resetting the machine."
	MsgResetDone     = "Machine has been reset."
	MsgRefilling     = "Administrator refilling stock."
	MsgRefillInvalid = "Invalid input for quantity or price. Refill canceled."
	MsgAuthFailed    = "Authentication failed. Returning to the main menu."
)

// ErrInternal marks a refill that failed for reasons the operator cannot fix.
// The fault is logged; callers should not display it.
var ErrInternal = errors.New("internal fault")

// Inventory is the store surface needed for maintenance.
type Inventory interface {
	Reset()
	NeedsPrice(key domain.ItemKey) bool
	Refill(key domain.ItemKey, add int, price *decimal.Decimal) (inventory.RefillResult, error)
}

// Admin performs maintenance on one machine's inventory.
type Admin struct {
	inv      Inventory
	password string
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
}

// Option configures the Admin.
type Option func(*Admin)

// WithPassword replaces the default shared secret.
func WithPassword(password string) Option {
	return func(a *Admin) {
		a.password = password
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Admin) {
		a.hooks = hooks
	}
}

// WithLogger sets the structured logger used for swallowed faults.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Admin) {
		a.logger = logger
	}
}

// New creates an Admin for inv.
func New(inv Inventory, opts ...Option) *Admin {
	a := &Admin{
		inv:      inv,
		password: domain.DefaultAdminPassword,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Authenticate compares attempt verbatim with the shared secret.
func (a *Admin) Authenticate(attempt string) bool {
	return subtle.ConstantTimeCompare([]byte(attempt), []byte(a.password)) == 1
}

// ResetMachine restores the default catalog. It always reports success;
// a fault during the reset is logged and swallowed.
func (a *Admin) ResetMachine(ctx context.Context) string {
	if err := guard(func() error {
		a.inv.Reset()
		return nil
	}); err != nil {
		a.logger.Error("Error in resetting machine", "error", err)
		return MsgResetDone
	}

	a.logger.Info("machine reset")
	if a.hooks.OnReset != nil {
		a.hooks.OnReset(ctx, &domain.InventoryEvent{
			EventBase: domain.NewBase(domain.EventReset, domain.SessionFromContext(ctx)),
		})
	}
	return MsgResetDone
}

// NeedsPrice reports whether refilling rawItem requires a price, i.e. the item
// is new or sold out. Blank names never need one; the refill will fail anyway.
func (a *Admin) NeedsPrice(rawItem string) bool {
	key, err := domain.NewItemKey(rawItem)
	if err != nil {
		return false
	}
	return a.inv.NeedsPrice(key)
}

// RefillStock parses the operator's answers and applies the refill.
// priceInput is only read when the item is new or sold out. Any parse failure
// returns domain.ErrInvalidRefill and leaves the inventory untouched.
func (a *Admin) RefillStock(ctx context.Context, rawItem, quantityInput, priceInput string) (inventory.RefillResult, error) {
	key, err := domain.NewItemKey(rawItem)
	if err != nil {
		return inventory.RefillResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidRefill, err)
	}
	qty, err := ParseQuantity(quantityInput)
	if err != nil {
		return inventory.RefillResult{}, err
	}

	var price *decimal.Decimal
	if a.inv.NeedsPrice(key) {
		p, err := ParsePrice(priceInput)
		if err != nil {
			return inventory.RefillResult{}, err
		}
		price = &p
	}

	var res inventory.RefillResult
	if err := guard(func() error {
		var refillErr error
		res, refillErr = a.inv.Refill(key, qty, price)
		return refillErr
	}); err != nil {
		if errors.Is(err, domain.ErrInvalidRefill) || errors.Is(err, domain.ErrPriceRequired) {
			return inventory.RefillResult{}, err
		}
		a.logger.Error("Error in refilling stock", "item", key, "error", err)
		return inventory.RefillResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	a.logger.Info("stock refilled", "item", key, "added", res.Added, "new_item", res.NewItem)
	if a.hooks.OnRefill != nil {
		a.hooks.OnRefill(ctx, &domain.InventoryEvent{
			EventBase: domain.NewBase(domain.EventRefill, domain.SessionFromContext(ctx)),
			Item:      res.Key,
			Quantity:  res.Added,
			Price:     res.Price,
			NewItem:   res.NewItem,
		})
	}
	return res, nil
}

// RefillMessage describes a completed refill to the operator.
func RefillMessage(res inventory.RefillResult) string {
	if res.NewItem {
		return fmt.Sprintf("New item %s has been added to the inventory with a quantity of %d and a price of %s.",
			res.Key.DisplayName(), res.Added, domain.FormatMoney(res.Price))
	}
	return fmt.Sprintf("Stock for %s has been refilled (+%d units).", res.Key.DisplayName(), res.Added)
}

// ParseQuantity reads a non-negative whole number of units.
func ParseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: quantity %q", domain.ErrInvalidRefill, raw)
	}
	return qty, nil
}

// ParsePrice reads a positive unit price in dollars.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: price %q", domain.ErrInvalidRefill, raw)
	}
	return price, nil
}

// guard runs fn, turning a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
