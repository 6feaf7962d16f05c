package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/vending"
	"github.com/aretw0/vending/internal/config"
	"github.com/aretw0/vending/internal/presentation/tui"
	httpadapter "github.com/aretw0/vending/pkg/adapters/http"
	"github.com/aretw0/vending/pkg/observability"
	"github.com/aretw0/vending/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	ConfigFile  string
	Debug       bool
	Headless    bool
	MetricsAddr string

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// LoadConfig reads the configuration, applying flags on top of it.
func LoadConfig(opts RunOptions) (*config.Config, error) {
	overrides := map[string]any{}
	if opts.Debug {
		overrides["log.debug"] = true
	}
	if opts.MetricsAddr != "" {
		overrides["metrics.addr"] = opts.MetricsAddr
	}
	return config.Load(config.Options{
		File:      opts.ConfigFile,
		Overrides: overrides,
	})
}

// Execute handles the 'run' command logic.
func Execute(opts RunOptions) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	return RunMachine(context.Background(), cfg, opts)
}

// RunMachine wires the machine to its journal, metrics and console, and runs
// the menus until the user exits, the input ends or a signal arrives.
func RunMachine(parent context.Context, cfg *config.Config, opts RunOptions) error {
	stdin, stdout := opts.Stdin, opts.Stdout
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}

	logger := createLogger(cfg)
	logger.Debug("configuration loaded", "config", cfg.String())

	sigCtx := NewSignalContext(parent)
	defer sigCtx.Cancel()

	journal, closeJournal, err := openJournal(sigCtx, cfg.Journal, logger)
	if err != nil {
		return err
	}
	defer closeJournal()

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	machine := vending.New(
		vending.WithLogger(logger),
		vending.WithAdminPassword(cfg.Admin.Password),
		vending.WithLifecycleHooks(observability.Hooks(logger, metrics, journal)),
	)

	if cfg.Metrics.Addr != "" {
		srv := httpadapter.Start(cfg.Metrics.Addr, httpadapter.NewHandler(reg, journal), logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown failed", "error", err)
			}
		}()
	}

	r := runner.NewRunner(machine, createRunnerOptions(cfg, opts, stdin, stdout, logger)...)
	runErr := r.Run(sigCtx)

	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	logCompletion(stdout, runErr, opts.Headless, sigCtx.Signal())

	return handleExecutionError(runErr)
}

// createRunnerOptions styles the console only when both ends are a terminal.
func createRunnerOptions(cfg *config.Config, opts RunOptions, stdin io.Reader, stdout io.Writer, logger *slog.Logger) []runner.Option {
	interactive := false
	if f, ok := stdin.(*os.File); ok && stdout == os.Stdout {
		interactive = tui.IsInteractive(f)
	}

	var handlerOpts []runner.TextHandlerOption
	if interactive && cfg.UI.Markdown {
		render, err := tui.NewRenderer()
		if err != nil {
			logger.Warn("markdown renderer unavailable", "error", err)
		} else {
			handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(render))
		}
	}

	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless || !cfg.UI.Banner),
		runner.WithInputHandler(runner.NewTextHandler(stdin, stdout, handlerOpts...)),
	}
	if interactive {
		runnerOpts = append(runnerOpts, runner.WithBanner(tui.DetectBanner()))
	}
	return runnerOpts
}
