package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/logging"
)

// Runner drives a Machine from a console: the role menu, the customer
// purchase loop and the administrator menu.
type Runner struct {
	Machine  *vending.Machine
	Handler  IOHandler
	Logger   *slog.Logger
	Headless bool
	Banner   string
}

// NewRunner creates a runner for m. Without WithInputHandler it reads
// Stdin and writes Stdout.
func NewRunner(m *vending.Machine, opts ...Option) *Runner {
	r := &Runner{
		Machine: m,
		Banner:  DefaultBanner,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	return r
}

// Run shows the role menu until the user exits. It returns nil when the user
// picks Exit or the input ends, and ctx.Err() when ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	if r.Machine == nil {
		return fmt.Errorf("runner: no machine configured")
	}

	err := r.loop(ctx)
	if errors.Is(err, io.EOF) {
		r.Logger.Debug("input closed")
		return nil
	}
	return err
}

func (r *Runner) loop(ctx context.Context) error {
	if !r.Headless && r.Banner != "" {
		if err := r.Handler.Show(ctx, r.Banner); err != nil {
			return err
		}
	}

	for {
		if err := r.Handler.Show(ctx, roleMenu); err != nil {
			return err
		}
		role, err := r.Handler.Ask(ctx, PromptRole)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(role) {
		case "1":
			err = r.runCustomer(ctx)
		case "2":
			err = r.runAdministrator(ctx)
		case "3":
			return r.Handler.Show(ctx, MsgGoodbye)
		default:
			err = r.Handler.Show(ctx, MsgInvalidRole)
		}
		if err != nil {
			return err
		}
	}
}
