package vending

import (
	"context"
	"log/slog"

	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/admin"
	"github.com/aretw0/vending/pkg/currency"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/inventory"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/aretw0/vending/pkg/purchase"
	"github.com/aretw0/vending/pkg/session"
	"github.com/shopspring/decimal"
)

// Version is the release of the vending module.
var Version = "0.3.0"

// Machine is the high-level entry point of the library.
// It owns the inventory and wires the purchase engine and the administrative
// operations to it. A Machine serves one operator at a time.
type Machine struct {
	store     *inventory.Store
	converter currency.Converter
	engine    *purchase.Engine
	admin     *admin.Admin
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	password  string
	catalog   []domain.CatalogEntry
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithCatalog stocks the machine with catalog instead of the default one.
// Resetting the machine restores this catalog.
func WithCatalog(catalog []domain.CatalogEntry) Option {
	return func(m *Machine) {
		m.catalog = catalog
	}
}

// WithAdminPassword replaces the default administrator password.
func WithAdminPassword(password string) Option {
	return func(m *Machine) {
		m.password = password
	}
}

// New creates a machine stocked with the default catalog.
func New(opts ...Option) *Machine {
	m := &Machine{
		converter: currency.NewConverter(),
		password:  domain.DefaultAdminPassword,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.catalog == nil {
		m.catalog = domain.DefaultCatalog()
	}
	m.store = inventory.New(m.catalog)

	m.engine = purchase.NewEngine(m.store,
		purchase.WithHooks(m.hooks),
		purchase.WithLogger(m.logger),
	)
	m.admin = admin.New(m.store,
		admin.WithPassword(m.password),
		admin.WithHooks(m.hooks),
		admin.WithLogger(m.logger),
	)
	return m
}

// Store returns the machine's inventory.
func (m *Machine) Store() *inventory.Store { return m.store }

// Engine returns the purchase engine.
func (m *Machine) Engine() *purchase.Engine { return m.engine }

// Admin returns the administrative operations.
func (m *Machine) Admin() *admin.Admin { return m.admin }

// Converter returns the currency converter.
func (m *Machine) Converter() currency.Converter { return m.converter }

// NewSession starts a client interaction.
func (m *Machine) NewSession() *session.Session {
	s := session.New(m.converter)
	m.logger.Debug("session started", "session_id", s.ID)
	return s
}

// Refund cancels the session's transaction and returns the refunded amount.
func (m *Machine) Refund(ctx context.Context, s *session.Session) decimal.Decimal {
	amount := s.Cancel()
	if m.hooks.OnRefund != nil {
		m.hooks.OnRefund(ctx, &domain.RefundEvent{
			EventBase: domain.NewBase(domain.EventRefund, s.ID),
			Amount:    amount,
		})
	}
	return amount
}

// Purchase runs the checkout state machine for the session's selected item.
// A sale settles the session; every other outcome leaves it untouched.
func (m *Machine) Purchase(ctx context.Context, s *session.Session, p ports.Prompter) (domain.Outcome, error) {
	ctx = domain.ContextWithSession(ctx, s.ID)
	out, err := m.engine.Checkout(ctx, s.Balance, s.Selected, p)
	if err != nil {
		return out, err
	}
	if out.Kind == domain.OutcomeSale {
		s.Settle()
	}
	return out, nil
}
