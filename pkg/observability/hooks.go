package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/ports"
	"github.com/google/uuid"
)

// LoggingHooks logs every lifecycle event at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSale: func(ctx context.Context, e *domain.SaleEvent) {
			logger.Debug("sale", "session_id", e.SessionID, "item", e.Receipt.Item,
				"price", e.Receipt.Price, "change", e.Receipt.Change)
		},
		OnUnderfunded: func(ctx context.Context, e *domain.UnderfundedEvent) {
			logger.Debug("underfunded", "session_id", e.SessionID, "item", e.Item, "shortfall", e.Shortfall)
		},
		OnDirective: func(ctx context.Context, e *domain.DirectiveEvent) {
			logger.Debug("directive", "session_id", e.SessionID, "item", e.Item, "directive", e.Directive)
		},
		OnRefund: func(ctx context.Context, e *domain.RefundEvent) {
			logger.Debug("refund", "session_id", e.SessionID, "amount", e.Amount)
		},
		OnReset: func(ctx context.Context, e *domain.InventoryEvent) {
			logger.Debug("reset")
		},
		OnRefill: func(ctx context.Context, e *domain.InventoryEvent) {
			logger.Debug("refill", "item", e.Item, "quantity", e.Quantity, "new_item", e.NewItem)
		},
	}
}

// MetricsHooks records lifecycle events into m.
func MetricsHooks(m *Metrics) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSale: func(ctx context.Context, e *domain.SaleEvent) {
			m.Sales.WithLabelValues(e.Receipt.Item.String()).Inc()
			m.Revenue.Add(e.Receipt.Price.InexactFloat64())
		},
		OnUnderfunded: func(ctx context.Context, e *domain.UnderfundedEvent) {
			m.Underfunded.WithLabelValues(e.Item.String()).Inc()
		},
		OnDirective: func(ctx context.Context, e *domain.DirectiveEvent) {
			m.Directives.WithLabelValues(string(e.Directive)).Inc()
		},
		OnRefund: func(ctx context.Context, e *domain.RefundEvent) {
			m.Refunds.Inc()
		},
		OnReset: func(ctx context.Context, e *domain.InventoryEvent) {
			m.Resets.Inc()
		},
		OnRefill: func(ctx context.Context, e *domain.InventoryEvent) {
			kind := "restock"
			if e.NewItem {
				kind = "new"
			}
			m.Refills.WithLabelValues(kind).Inc()
		},
	}
}

// JournalHooks appends sales, refunds and inventory changes to j.
// Journal failures are logged and never interrupt the machine.
func JournalHooks(j ports.Journal, logger *slog.Logger) domain.LifecycleHooks {
	record := func(ctx context.Context, entry domain.Entry) {
		entry.ID = uuid.NewString()
		if err := j.Record(ctx, entry); err != nil {
			logger.Warn("journal write failed", "kind", entry.Kind, "error", err)
		}
	}

	return domain.LifecycleHooks{
		OnSale: func(ctx context.Context, e *domain.SaleEvent) {
			record(ctx, domain.Entry{
				SessionID: e.SessionID,
				Kind:      domain.EntrySale,
				Item:      e.Receipt.Item,
				Quantity:  1,
				Amount:    e.Receipt.Price,
				Change:    e.Receipt.Change,
				At:        e.Timestamp,
			})
		},
		OnRefund: func(ctx context.Context, e *domain.RefundEvent) {
			record(ctx, domain.Entry{
				SessionID: e.SessionID,
				Kind:      domain.EntryRefund,
				Amount:    e.Amount,
				At:        e.Timestamp,
			})
		},
		OnReset: func(ctx context.Context, e *domain.InventoryEvent) {
			record(ctx, domain.Entry{Kind: domain.EntryReset, At: e.Timestamp})
		},
		OnRefill: func(ctx context.Context, e *domain.InventoryEvent) {
			record(ctx, domain.Entry{
				Kind:     domain.EntryRefill,
				Item:     e.Item,
				Quantity: e.Quantity,
				Amount:   e.Price,
				At:       e.Timestamp,
			})
		},
	}
}

// Hooks composes logging, metrics and journaling into one set of hooks.
// m and j may be nil to leave that concern out.
func Hooks(logger *slog.Logger, m *Metrics, j ports.Journal) domain.LifecycleHooks {
	hooks := []domain.LifecycleHooks{LoggingHooks(logger)}
	if m != nil {
		hooks = append(hooks, MetricsHooks(m))
	}
	if j != nil {
		hooks = append(hooks, JournalHooks(j, logger))
	}
	return domain.MergeHooks(hooks...)
}
