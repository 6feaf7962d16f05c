package runner

import (
	"context"
	"errors"
	"strings"

	"github.com/aretw0/vending/pkg/admin"
	"github.com/aretw0/vending/pkg/domain"
)

func (r *Runner) runAdministrator(ctx context.Context) error {
	attempt, err := r.Handler.Ask(ctx, PromptPassword)
	if err != nil {
		return err
	}
	ops := r.Machine.Admin()
	if !ops.Authenticate(attempt) {
		r.Logger.Warn("administrator authentication failed")
		return r.Handler.Show(ctx, admin.MsgAuthFailed)
	}

	for {
		if err := r.Handler.Show(ctx, adminMenu); err != nil {
			return err
		}
		choice, err := r.Handler.Ask(ctx, PromptAdminChoice)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := r.Handler.Say(ctx, admin.MsgResetting); err != nil {
				return err
			}
			err = r.Handler.Say(ctx, ops.ResetMachine(ctx))
		case "2":
			err = r.refill(ctx)
		case "3":
			if err := r.Handler.Show(ctx, MsgAdminExit); err != nil {
				return err
			}
			return r.Handler.Show(ctx, Separator)
		default:
			err = r.Handler.Show(ctx, MsgAdminInvalid)
		}
		if err != nil {
			return err
		}
	}
}

// refill asks for the item and quantity, and for a price only when the item
// is new or sold out. A bad quantity cancels before the price is asked.
func (r *Runner) refill(ctx context.Context) error {
	ops := r.Machine.Admin()
	if err := r.Handler.Say(ctx, admin.MsgRefilling); err != nil {
		return err
	}

	item, err := r.Handler.Ask(ctx, PromptRefillItem)
	if err != nil {
		return err
	}
	qty, err := r.Handler.Ask(ctx, PromptRefillQty)
	if err != nil {
		return err
	}
	if _, err := admin.ParseQuantity(qty); err != nil {
		return r.Handler.Say(ctx, admin.MsgRefillInvalid)
	}

	var price string
	if ops.NeedsPrice(item) {
		if price, err = r.Handler.Ask(ctx, PromptRefillPrice); err != nil {
			return err
		}
	}

	res, err := ops.RefillStock(ctx, item, qty, price)
	switch {
	case err == nil:
		return r.Handler.Say(ctx, admin.RefillMessage(res))
	case errors.Is(err, domain.ErrInvalidRefill), errors.Is(err, domain.ErrPriceRequired):
		return r.Handler.Say(ctx, admin.MsgRefillInvalid)
	default:
		// Internal faults are already logged by the admin operations.
		return nil
	}
}
