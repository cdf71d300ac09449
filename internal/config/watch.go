package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"factsviewer/internal/facts"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the .env file must stay quiet before it is
// re-read. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// EndpointWatcher reports changes to FACTS_API_URL in a .env file.
type EndpointWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	current  string
}

// NewEndpointWatcher starts watching the directory holding the .env file at
// path. The directory is watched rather than the file so that editors which
// replace the file by rename are still seen. A nil logger disables
// diagnostics.
func NewEndpointWatcher(path string, logger *zap.Logger) (*EndpointWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	ew := &EndpointWatcher{
		path:     abs,
		watcher:  w,
		logger:   logger,
		debounce: DefaultDebounce,
	}
	ew.current, _ = ew.read()
	return ew, nil
}

// Run delivers each new endpoint to onChange until ctx is done, then closes
// the underlying watcher. A removed file or a file without FACTS_API_URL
// reports facts.DefaultURL.
func (w *EndpointWatcher) Run(ctx context.Context, onChange func(endpoint string)) error {
	defer func() { _ = w.watcher.Close() }()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("env file event", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("env watch error", zap.Error(err))

		case <-fire:
			fire = nil
			endpoint, err := w.read()
			if err != nil {
				w.logger.Warn("reload env file", zap.String("path", w.path), zap.Error(err))
				continue
			}
			if endpoint == w.current {
				continue
			}
			w.logger.Info("endpoint changed", zap.String("from", w.current), zap.String("url", endpoint))
			w.current = endpoint
			onChange(endpoint)
		}
	}
}

// read returns the endpoint the .env file currently declares.
func (w *EndpointWatcher) read() (string, error) {
	vars, err := godotenv.Read(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return facts.DefaultURL, nil
		}
		return "", err
	}
	if v := vars[EnvAPIURL]; v != "" {
		return v, nil
	}
	return facts.DefaultURL, nil
}
