/*
Package vending simulates the transaction workflow of a retail vending machine.

It covers item selection, currency-aware cash handling, purchase confirmation
with change calculation, and administrator-controlled inventory maintenance.

# Concept

The heart of the module is the purchase state machine. A client's balance,
always converted to dollars, is checked against the price of the selected
item. The attempt ends in a Sale (one unit of stock leaves the machine and
change is computed), an Unavailable verdict, or an Underfunded verdict that
the client resolves with one of three directives: insert more cash, pick
another item, or cancel and get a refund.

The Machine owns the inventory; the interactive menus in pkg/runner and the
CLI in cmd/vending are thin drivers around it.

# Usage

	m := vending.New()
	s := m.NewSession()

	_, _ = s.SelectCurrency("dollars")
	_, _ = s.InsertCash("5", false)
	_ = s.SelectItem("sprite", m.Store())

	out, err := m.Purchase(ctx, s, prompter)
	if err != nil {
		return err
	}
	if out.Kind == domain.OutcomeSale {
		fmt.Println(purchase.ConfirmationMessage(out.Receipt))
	}

# Observability

Lifecycle hooks (sales, underfunded attempts, directives, refunds, resets,
refills) can be attached with WithLifecycleHooks. Package observability
provides ready-made hooks for slog, prometheus and the transaction journal.
*/
package vending
