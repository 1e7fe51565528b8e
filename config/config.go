// Package config loads CLI settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/seatgrid/seating"
)

// Environment variable names.
const (
	EnvSeed      = "SEATGRID_SEED"
	EnvLogLevel  = "SEATGRID_LOG_LEVEL"
	EnvBacktrack = "SEATGRID_BACKTRACK"
	EnvIterative = "SEATGRID_ITERATIVE"
	EnvHeader    = "SEATGRID_HEADER"
)

// ErrInvalidSetting indicates an environment value that could not be parsed.
var ErrInvalidSetting = errors.New("config: invalid setting")

// Config holds the CLI settings.
type Config struct {
	Seed      int64                   // start-column seed; 0 means pick one from the clock
	LogLevel  string                  // debug|info|warn|error
	Backtrack seating.BacktrackPolicy // failed-branch policy
	Iterative bool                    // explicit-stack traversal
	Header    bool                    // print the legend above the plan
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:  "info",
		Backtrack: seating.LeaveOccupied,
		Header:    true,
	}
}

// Load reads ".env" if it exists, then the environment. Variables already
// set in the environment win over .env values.
func Load() (Config, error) {
	var present []string
	if _, err := os.Stat(".env"); err == nil {
		present = append(present, ".env")
	}
	return load(present)
}

// LoadFiles is Load for explicitly named .env files, every one of which
// must exist.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return Config{}, fmt.Errorf("config: env file: %w", err)
		}
	}
	return load(files)
}

func load(present []string) (Config, error) {
	if len(present) > 0 {
		if err := godotenv.Load(present...); err != nil {
			return Config{}, fmt.Errorf("config: load %v: %w", present, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, starting from Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, EnvSeed, v)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup(EnvLogLevel); ok {
		lvl, err := ParseLogLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%w (%s)", err, EnvLogLevel)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := lookup(EnvBacktrack); ok {
		p, err := ParseBacktrack(v)
		if err != nil {
			return cfg, err
		}
		cfg.Backtrack = p
	}
	if v, ok := lookup(EnvIterative); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, EnvIterative, v)
		}
		cfg.Iterative = b
	}
	if v, ok := lookup(EnvHeader); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%w: %s=%q", ErrInvalidSetting, EnvHeader, v)
		}
		cfg.Header = b
	}
	return cfg, nil
}

// ParseLogLevel normalises one of debug, info, warn or error.
func ParseLogLevel(s string) (string, error) {
	lvl := strings.ToLower(strings.TrimSpace(s))
	switch lvl {
	case "debug", "info", "warn", "error":
		return lvl, nil
	}
	return "", fmt.Errorf("%w: log level %q", ErrInvalidSetting, s)
}

// ParseBacktrack accepts "leave" or "undo".
func ParseBacktrack(s string) (seating.BacktrackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leave", "keep":
		return seating.LeaveOccupied, nil
	case "undo", "revert":
		return seating.UndoOnBacktrack, nil
	}
	return 0, fmt.Errorf("%w: backtrack policy %q", ErrInvalidSetting, s)
}
