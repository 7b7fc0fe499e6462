package config

import (
	"fmt"
	"os"

	"github.com/google/shlex"

	"github.com/louislva/prompt/internal/files"
)

// Environment variables read by Load.
const (
	EnvIgnore = "PROMPT_IGNORE"
	EnvLog    = "PROMPT_LOG"
)

// Config holds the runtime settings taken from the environment.
type Config struct {
	// Root is the directory searched for files.
	Root string
	// Ignore lists the patterns excluded from search.
	Ignore []string
	// LogFile receives debug logs when set.
	LogFile string
}

// Load reads the configuration from the working directory and environment.
func Load() (*Config, error) {
	root, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	ignore := append([]string{}, files.DefaultIgnore...)
	if raw := os.Getenv(EnvIgnore); raw != "" {
		extra, err := shlex.Split(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", EnvIgnore, err)
		}
		ignore = append(ignore, extra...)
	}

	return &Config{
		Root:    root,
		Ignore:  ignore,
		LogFile: os.Getenv(EnvLog),
	}, nil
}
