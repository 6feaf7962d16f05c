package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/vending/pkg/domain"
	"github.com/aretw0/vending/pkg/purchase"
	"github.com/aretw0/vending/pkg/session"
)

// runCustomer serves one client until they type exit at the currency prompt.
func (r *Runner) runCustomer(ctx context.Context) error {
	s := r.Machine.NewSession()
	r.Logger.Debug("customer session", "session_id", s.ID)

	for {
		if err := r.Handler.Show(ctx, r.catalog()); err != nil {
			return err
		}
		ok, err := r.selectCurrency(ctx, s)
		if err != nil {
			return err
		}
		if !ok {
			return r.Handler.Show(ctx, Separator)
		}
		if err := r.insertCash(ctx, s, false); err != nil {
			return err
		}
		if err := r.purchaseLoop(ctx, s); err != nil {
			return err
		}
	}
}

// purchaseLoop alternates item selection and checkout until a sale or a
// refund ends the transaction.
func (r *Runner) purchaseLoop(ctx context.Context, s *session.Session) error {
	for {
		canceled, err := r.selectItem(ctx, s)
		if err != nil || canceled {
			return err
		}

		out, err := r.Machine.Purchase(ctx, s, r.Handler)
		if err != nil {
			return err
		}

		switch out.Kind {
		case domain.OutcomeSale:
			return r.Handler.Say(ctx, purchase.ConfirmationMessage(out.Receipt))
		case domain.OutcomeUnavailable:
			if err := r.Handler.Say(ctx, purchase.MsgUnavailable); err != nil {
				return err
			}
		case domain.OutcomeDirective:
			switch out.Directive {
			case domain.DirectiveCancel:
				return r.refund(ctx, s)
			case domain.DirectiveCash:
				ok, err := r.selectCurrency(ctx, s)
				if err != nil {
					return err
				}
				if !ok {
					return r.refund(ctx, s)
				}
				if err := r.insertCash(ctx, s, true); err != nil {
					return err
				}
			}
			// DirectiveAnother falls through to a new selection.
		}
	}
}

func (r *Runner) selectCurrency(ctx context.Context, s *session.Session) (bool, error) {
	prompt := PromptCurrency
	for {
		raw, err := r.Handler.Ask(ctx, prompt)
		if err != nil {
			return false, err
		}
		ok, err := s.SelectCurrency(raw)
		if err == nil {
			return ok, nil
		}
		prompt = PromptCurrencyBad
	}
}

func (r *Runner) insertCash(ctx context.Context, s *session.Session, topUp bool) error {
	prompt := fmt.Sprintf(PromptAmount, s.Currency)
	for {
		raw, err := r.Handler.Ask(ctx, prompt)
		if err != nil {
			return err
		}

		balance, err := s.InsertCash(raw, topUp)
		switch {
		case err == nil:
			msg := MsgInserted
			if topUp {
				msg = MsgBalance
			}
			return r.Handler.Say(ctx, fmt.Sprintf(msg, domain.FormatMoney(balance)))
		case errors.Is(err, domain.ErrZeroAmount):
			err = r.Handler.Say(ctx, MsgZeroAmount)
		default:
			err = r.Handler.Say(ctx, MsgBadAmount)
		}
		if err != nil {
			return err
		}
	}
}

// selectItem reports true when the client canceled; the refund has then
// already been announced.
func (r *Runner) selectItem(ctx context.Context, s *session.Session) (bool, error) {
	for {
		raw, err := r.Handler.Ask(ctx, PromptItem)
		if err != nil {
			return false, err
		}

		err = s.SelectItem(raw, r.Machine.Store())
		switch {
		case err == nil:
			return false, r.Handler.Show(ctx, fmt.Sprintf(MsgSelected, s.Selected.DisplayName()))
		case errors.Is(err, domain.ErrCanceled):
			return true, r.refund(ctx, s)
		default:
			if err := r.Handler.Say(ctx, MsgBadItem); err != nil {
				return false, err
			}
		}
	}
}

func (r *Runner) refund(ctx context.Context, s *session.Session) error {
	amount := r.Machine.Refund(ctx, s)
	return r.Handler.Say(ctx, fmt.Sprintf(MsgRefunded, domain.FormatMoney(amount)))
}

func (r *Runner) catalog() string {
	var b strings.Builder
	b.WriteString(Separator + "\nAvailable Items:\n")
	for _, e := range r.Machine.Store().VisibleItems() {
		fmt.Fprintf(&b, "- %s: %s\n", e.Display, domain.FormatMoney(e.Price))
	}
	b.WriteString(Separator)
	return b.String()
}
