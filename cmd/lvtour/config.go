package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtour/tsp"
)

// ErrBadConfig is returned for unreadable or invalid configuration.
var ErrBadConfig = errors.New("lvtour: bad config")

// Config is the file-level configuration. Flags set on the command line
// take precedence over values read from the file.
type Config struct {
	CandidateK          int           `yaml:"candidate_k"`
	TimeBudget          time.Duration `yaml:"time_budget"`
	DeadlineGranularity time.Duration `yaml:"deadline_granularity"`
	Spatial             bool          `yaml:"spatial"`
	Log                 LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// DefaultConfig mirrors tsp.DefaultOptions with info-level text logs.
func DefaultConfig() Config {
	opts := tsp.DefaultOptions()

	return Config{
		CandidateK:          opts.CandidateK,
		TimeBudget:          opts.TimeBudget,
		DeadlineGranularity: opts.DeadlineGranularity,
		Spatial:             opts.Spatial,
		Log:                 LogConfig{Level: "info", Format: "text"},
	}
}

// ReadConfig overlays the YAML file at path onto DefaultConfig.
func ReadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}

	return cfg, nil
}

// Options converts the configuration into solver options.
func (c Config) Options(logger *slog.Logger) tsp.Options {
	return tsp.Options{
		CandidateK:          c.CandidateK,
		TimeBudget:          c.TimeBudget,
		DeadlineGranularity: c.DeadlineGranularity,
		Spatial:             c.Spatial,
		Logger:              logger,
	}
}

// parseLevel maps a level name onto slog.Level.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrBadConfig, s)
	}

	return lvl, nil
}
