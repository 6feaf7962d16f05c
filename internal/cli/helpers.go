package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/internal/logging"
	"github.com/aretw0/vending/pkg/adapters/memory"
	"github.com/aretw0/vending/pkg/adapters/redis"
	"github.com/aretw0/vending/pkg/ports"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Without debug, only warnings and errors reach Stderr so the menus stay clean.
func createLogger(cfg *config.Config) *slog.Logger {
	level := cfg.SlogLevel()
	if level < slog.LevelWarn && !cfg.Log.Debug {
		level = slog.LevelWarn
	}
	return logging.New(level)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// journalLockTTL bounds how long a crashed console keeps the redis journal.
const journalLockTTL = 30 * time.Second

// openJournal builds the configured journal. The returned closer releases
// every resource it acquired; it is never nil.
func openJournal(ctx context.Context, cfg config.JournalConfig, logger *slog.Logger) (ports.Journal, func(), error) {
	switch cfg.Backend {
	case config.JournalNone:
		return nil, func() {}, nil
	case config.JournalMemory:
		return memory.NewJournal(), func() {}, nil
	case config.JournalRedis:
		j := redis.New(cfg.Redis.Addr, "", cfg.Redis.DB,
			redis.WithPrefix(cfg.Redis.Prefix),
			redis.WithTTL(cfg.Redis.TTL),
		)

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := j.Ping(pingCtx); err != nil {
			j.Close()
			return nil, nil, fmt.Errorf("redis journal at %s: %w", cfg.Redis.Addr, err)
		}

		unlock, err := j.Locker().Lock(pingCtx, "console", journalLockTTL)
		if err != nil {
			j.Close()
			return nil, nil, fmt.Errorf("another console is using journal prefix %q: %w", cfg.Redis.Prefix, err)
		}

		logger.Info("redis journal ready", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
		return j, func() {
			if err := unlock(context.Background()); err != nil {
				logger.Warn("journal lock release failed", "error", err)
			}
			j.Close()
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown journal backend %q", cfg.Backend)
	}
}

func isInterrupted(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, err error, quiet bool, sig os.Signal) {
	if quiet || !isInterrupted(err) {
		return
	}
	switch sig {
	case os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted.")
	case nil:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Interrupted.")
	default:
		fmt.Fprintf(w, "\n")
		printSystemMessage(w, "Terminated.")
	}
}
