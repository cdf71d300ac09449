// Package config resolves runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"factsviewer/internal/facts"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAPIURL  = "FACTS_API_URL"
	EnvTimeout = "FACTS_API_TIMEOUT"
	EnvLogFile = "FACTS_LOG_FILE"
	EnvDebug   = "FACTS_DEBUG"
)

// Config holds the resolved settings for one run.
type Config struct {
	APIURL  string
	Timeout time.Duration
	LogFile string
	Debug   bool

	// EndpointPinned is set when APIURL came from the real environment
	// rather than a .env file, so edits to .env must not replace it.
	EndpointPinned bool
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		APIURL:  facts.DefaultURL,
		Timeout: facts.DefaultTimeout,
		LogFile: filepath.Join(os.TempDir(), "factsviewer.log"),
	}
}

// Load reads the given .env files (missing files are skipped; real
// environment variables always win) and then applies environment overrides
// on top of Default.
func Load(envFiles ...string) (Config, error) {
	pinned := os.Getenv(EnvAPIURL) != ""

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()
	cfg.APIURL = getEnv(EnvAPIURL, cfg.APIURL)
	cfg.EndpointPinned = pinned
	cfg.LogFile = getEnv(EnvLogFile, cfg.LogFile)

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s: must be positive, got %s", EnvTimeout, d)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = b
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
