package vending_test

import (
	"context"
	"fmt"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/testutils"
	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/purchase"
)

// ExampleMachine_Purchase pays in shekels and buys an item in one go.
func ExampleMachine_Purchase() {
	m := vending.New()
	ctx := context.Background()

	s := m.NewSession()
	s.SelectCurrency("shekels")
	s.InsertCash("20", false) // 20 * 0.29 = $5.80
	if err := s.SelectItem("snickers", m.Store()); err != nil {
		fmt.Println(err)
		return
	}

	out, err := m.Purchase(ctx, s, nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(purchase.ConfirmationMessage(out.Receipt))
	// Output: Purchase confirmed! You bought Snickers for $2.00. Your change is $3.80.
}

// ExampleMachine_Purchase_underfunded shows the recovery prompt when the
// balance is short; here the client cancels and is refunded.
func ExampleMachine_Purchase_underfunded() {
	m := vending.New()
	ctx := context.Background()

	s := m.NewSession()
	s.SelectCurrency("dollars")
	s.InsertCash("1", false)
	s.SelectItem("coca-cola", m.Store())

	out, _ := m.Purchase(ctx, s, testutils.NewScriptedPrompter("cancel"))
	if out.Kind == domain.OutcomeDirective && out.Directive == domain.DirectiveCancel {
		fmt.Println("short by", domain.FormatMoney(out.Shortfall))
		fmt.Println("refunded", domain.FormatMoney(m.Refund(ctx, s)))
	}
	// Output:
	// short by $4.00
	// refunded $1.00
}
