// Package config loads lvpart settings from defaults, an optional YAML file,
// LVPART_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvpart/hull"
	"github.com/katalvlaran/lvpart/internal/report"
	"github.com/katalvlaran/lvpart/partition"
)

// Sentinel validation errors.
var (
	ErrInvalidVerifyLimit = errors.New("config: verify.max_n must be positive")
	ErrInvalidLogLevel    = errors.New("config: unknown logging.level")
	ErrInvalidLogFormat   = errors.New("config: logging.format must be text or json")
)

// Default configuration values.
const (
	DefaultObjective   = "max"
	DefaultQueryMode   = "binary"
	DefaultEqualSlopes = "reject"
	DefaultFormat      = string(report.FormatPlain)
	DefaultVerify      = false
	DefaultVerifyMaxN  = 5000
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Config holds all lvpart settings.
type Config struct {
	Solve   SolveConfig   `mapstructure:"solve"`
	Output  OutputConfig  `mapstructure:"output"`
	Verify  VerifyConfig  `mapstructure:"verify"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SolveConfig selects the objective and the envelope policies.
type SolveConfig struct {
	Objective   string `mapstructure:"objective"`
	QueryMode   string `mapstructure:"query_mode"`
	EqualSlopes string `mapstructure:"equal_slopes"`
}

// OutputConfig selects the report format.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// VerifyConfig controls the O(n²) cross-check against the naive solver.
type VerifyConfig struct {
	Enabled bool `mapstructure:"enabled"`
	MaxN    int  `mapstructure:"max_n"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := c.SolveOptions(); err != nil {
		return err
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	if c.Verify.MaxN <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVerifyLimit, c.Verify.MaxN)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}

// SolveOptions translates the solve section into partition.Options.
func (c *Config) SolveOptions() (partition.Options, error) {
	opts := partition.DefaultOptions()

	obj, err := partition.ParseObjective(c.Solve.Objective)
	if err != nil {
		return opts, err
	}
	mode, err := hull.ParseQueryMode(c.Solve.QueryMode)
	if err != nil {
		return opts, err
	}
	policy, err := hull.ParseEqualSlopePolicy(c.Solve.EqualSlopes)
	if err != nil {
		return opts, err
	}
	opts.Objective = obj
	opts.QueryMode = mode
	opts.EqualSlopes = policy

	return opts, nil
}

// Format returns the parsed output format.
func (c *Config) Format() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatPlain
	}

	return f
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}

	return lvl, nil
}
