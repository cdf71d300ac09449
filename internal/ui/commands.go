package ui

import (
	"context"
	"errors"

	"factsviewer/internal/facts"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Fetcher retrieves the facts envelope from one endpoint.
// *facts.Client satisfies it.
type Fetcher interface {
	URL() string
	Fetch(ctx context.Context) (*facts.Response, error)
}

// FetcherFactory builds a Fetcher for an endpoint URL.
type FetcherFactory func(endpoint string) Fetcher

// ClientFactory returns a FetcherFactory producing *facts.Client values
// configured with opts.
func ClientFactory(opts ...facts.Option) FetcherFactory {
	return func(endpoint string) Fetcher {
		return facts.NewClient(endpoint, opts...)
	}
}

// fetchFactsCmd returns a command that performs the single fetch and reports
// the outcome as factsLoadedMsg or factsFailedMsg tagged with f.URL().
func fetchFactsCmd(f Fetcher, logger *zap.Logger) tea.Cmd {
	endpoint := f.URL()
	return func() tea.Msg {
		resp, err := f.Fetch(context.Background())
		if err != nil {
			fields := []zap.Field{zap.String("url", endpoint), zap.Error(err)}
			var se *facts.StatusError
			if errors.As(err, &se) {
				fields = append(fields, zap.Int("status", se.Code))
			}
			logger.Error("error fetching facts", fields...)
			return factsFailedMsg{Endpoint: endpoint, Err: err}
		}
		logger.Info("facts fetched",
			zap.String("url", endpoint),
			zap.Int("count", len(resp.Data)),
			zap.String("message", resp.Message),
		)
		return factsLoadedMsg{Endpoint: endpoint, Facts: resp.Data}
	}
}
