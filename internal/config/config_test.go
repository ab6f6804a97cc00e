package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpart/hull"
	"github.com/katalvlaran/lvpart/internal/config"
	"github.com/katalvlaran/lvpart/internal/report"
	"github.com/katalvlaran/lvpart/partition"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lvpart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("lvpart", pflag.ContinueOnError)
	fs.String("objective", config.DefaultObjective, "")
	fs.String("query", config.DefaultQueryMode, "")
	fs.String("format", config.DefaultFormat, "")
	fs.Bool("verify", config.DefaultVerify, "")
	fs.Int("verify-max-n", config.DefaultVerifyMaxN, "")

	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "{}\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultObjective, cfg.Solve.Objective)
	assert.Equal(t, config.DefaultQueryMode, cfg.Solve.QueryMode)
	assert.Equal(t, config.DefaultEqualSlopes, cfg.Solve.EqualSlopes)
	assert.Equal(t, config.DefaultFormat, cfg.Output.Format)
	assert.False(t, cfg.Verify.Enabled)
	assert.Equal(t, config.DefaultVerifyMaxN, cfg.Verify.MaxN)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)

	opts, err := cfg.SolveOptions()
	require.NoError(t, err)
	assert.Equal(t, partition.DefaultOptions(), opts)
	assert.Equal(t, report.FormatPlain, cfg.Format())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
solve:
  objective: min
  query_mode: pointer
  equal_slopes: keep-better
output:
  format: yaml
verify:
  enabled: true
  max_n: 100
logging:
  level: debug
  format: json
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	opts, err := cfg.SolveOptions()
	require.NoError(t, err)
	assert.Equal(t, partition.Minimize, opts.Objective)
	assert.Equal(t, hull.MonotonePointer, opts.QueryMode)
	assert.Equal(t, hull.KeepBetterIntercept, opts.EqualSlopes)
	assert.Equal(t, report.FormatYAML, cfg.Format())
	assert.True(t, cfg.Verify.Enabled)
	assert.Equal(t, 100, cfg.Verify.MaxN)

	lvl, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "solve:\n  objective: min\n")
	t.Setenv("LVPART_SOLVE_OBJECTIVE", "max")
	t.Setenv("LVPART_OUTPUT_FORMAT", "table")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "max", cfg.Solve.Objective)
	assert.Equal(t, report.FormatTable, cfg.Format())
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("LVPART_SOLVE_QUERY_MODE", "binary")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--query", "pointer", "--verify", "--verify-max-n", "7"}))

	cfg, err := config.Load(writeConfig(t, "output:\n  format: json\n"), fs)
	require.NoError(t, err)
	assert.Equal(t, "pointer", cfg.Solve.QueryMode)
	assert.True(t, cfg.Verify.Enabled)
	assert.Equal(t, 7, cfg.Verify.MaxN)
	// Unset flags leave lower-precedence sources in charge.
	assert.Equal(t, report.FormatJSON, cfg.Format())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"objective", "solve:\n  objective: best\n", partition.ErrUnknownObjective},
		{"query", "solve:\n  query_mode: linear\n", hull.ErrUnknownQueryMode},
		{"slopes", "solve:\n  equal_slopes: merge\n", hull.ErrUnknownEqualSlopePolicy},
		{"format", "output:\n  format: csv\n", report.ErrUnknownFormat},
		{"max_n", "verify:\n  max_n: 0\n", config.ErrInvalidVerifyLimit},
		{"level", "logging:\n  level: loud\n", config.ErrInvalidLogLevel},
		{"log format", "logging:\n  format: xml\n", config.ErrInvalidLogFormat},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tc.body), nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
