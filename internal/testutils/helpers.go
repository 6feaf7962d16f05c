package testutils

import (
	"context"
	"io"
	"testing"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/shopspring/decimal"
)

// ScriptedPrompter replays canned answers and records the conversation.
// Once the script is exhausted Ask returns io.EOF.
type ScriptedPrompter struct {
	Inputs []string
	Asked  []string
	Said   []string
}

// NewScriptedPrompter creates a prompter answering with inputs in order.
func NewScriptedPrompter(inputs ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Inputs: inputs}
}

func (p *ScriptedPrompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.Asked = append(p.Asked, prompt)
	if len(p.Inputs) == 0 {
		return "", io.EOF
	}
	next := p.Inputs[0]
	p.Inputs = p.Inputs[1:]
	return next, nil
}

func (p *ScriptedPrompter) Say(ctx context.Context, msg string) error {
	p.Said = append(p.Said, msg)
	return nil
}

// Dollars parses a decimal literal, failing the test on bad input.
func Dollars(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// RecordingHooks captures every lifecycle event it receives.
type RecordingHooks struct {
	Sales       []domain.SaleEvent
	Underfunded []domain.UnderfundedEvent
	Directives  []domain.DirectiveEvent
	Refunds     []domain.RefundEvent
	Resets      []domain.InventoryEvent
	Refills     []domain.InventoryEvent
}

// Hooks returns lifecycle hooks writing into r.
func (r *RecordingHooks) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSale:        func(ctx context.Context, e *domain.SaleEvent) { r.Sales = append(r.Sales, *e) },
		OnUnderfunded: func(ctx context.Context, e *domain.UnderfundedEvent) { r.Underfunded = append(r.Underfunded, *e) },
		OnDirective:   func(ctx context.Context, e *domain.DirectiveEvent) { r.Directives = append(r.Directives, *e) },
		OnRefund:      func(ctx context.Context, e *domain.RefundEvent) { r.Refunds = append(r.Refunds, *e) },
		OnReset:       func(ctx context.Context, e *domain.InventoryEvent) { r.Resets = append(r.Resets, *e) },
		OnRefill:      func(ctx context.Context, e *domain.InventoryEvent) { r.Refills = append(r.Refills, *e) },
	}
}
