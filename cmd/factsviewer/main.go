package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"factsviewer/internal/config"
	"factsviewer/internal/facts"
	"factsviewer/internal/logging"
	"factsviewer/internal/telemetry"
	"factsviewer/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const envFile = ".env"

// options holds flag values; zero values mean "use config".
type options struct {
	apiURL      string
	timeout     time.Duration
	logFile     string
	debug       bool
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "factsviewer",
		Short: "Browse interesting facts from the facts API",
		Long: `factsviewer fetches the facts list once from the configured API endpoint
and renders it as cards in the terminal.

The endpoint comes from --api-url, then FACTS_API_URL (environment or .env),
then the built-in production URL. When the endpoint comes from .env, edits to
that file switch the endpoint and refetch while the viewer is running.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg, opts)
			return run(cmd.Context(), cfg, envFile, opts.noAltScreen)
		},
	}

	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "facts endpoint (overrides "+config.EnvAPIURL+")")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (default 30s)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "diagnostic log file")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")
	return cmd
}

// applyFlags overlays explicitly set flags on the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts options) {
	if cmd.Flags().Changed("api-url") && opts.apiURL != "" {
		cfg.APIURL = opts.apiURL
		cfg.EndpointPinned = true
	}
	if cmd.Flags().Changed("timeout") && opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = opts.debug
	}
}

// sender is the part of *tea.Program the endpoint watcher needs.
type sender interface {
	Send(msg tea.Msg)
}

// watchEndpoint forwards FACTS_API_URL edits in envPath to p until ctx is
// done. It does nothing when the endpoint is pinned by a flag or the real
// environment.
func watchEndpoint(ctx context.Context, cfg config.Config, envPath string, p sender, logger *zap.Logger) {
	if cfg.EndpointPinned {
		return
	}
	w, err := config.NewEndpointWatcher(envPath, logger)
	if err != nil {
		logger.Warn("env watch disabled", zap.Error(err))
		return
	}
	go func() {
		_ = w.Run(ctx, func(endpoint string) {
			p.Send(ui.EndpointChangedMsg{URL: endpoint})
		})
	}()
}

func run(ctx context.Context, cfg config.Config, envPath string, noAltScreen bool) error {
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	tp, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", zap.Error(err))
		}
	}()

	logger.Debug("starting",
		zap.String("url", cfg.APIURL),
		zap.Duration("timeout", cfg.Timeout),
	)

	newFetcher := ui.ClientFactory(facts.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	model := ui.NewAppModel(ui.NewFactsView(cfg.APIURL, newFetcher, logger)).AsTeaModel()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if !noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen(), tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, progOpts...)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	watchEndpoint(watchCtx, cfg, envPath, p, logger)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "factsviewer: %v\n", err)
		os.Exit(1)
	}
}
