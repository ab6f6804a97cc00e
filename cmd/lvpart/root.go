package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpart/internal/config"
	"github.com/katalvlaran/lvpart/internal/input"
	"github.com/katalvlaran/lvpart/internal/report"
	"github.com/katalvlaran/lvpart/partition"
)

// ErrVerifyMismatch is returned when --verify finds a different optimum.
var ErrVerifyMismatch = errors.New("verify: convex hull result differs from naive DP")

// stdinArg selects standard input explicitly.
const stdinArg = "-"

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "lvpart [file|-]",
		Short: "Optimal contiguous partition with quadratic segment cost",
		Long: `lvpart splits a sequence into contiguous segments maximizing (or minimizing)
the total cost, where a segment with sum s costs a*s^2 + b*s + c.

Input (stdin unless a file is given):
  line 1: n
  line 2: a b c
  line 3: x_1 ... x_n`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}

			return runSolve(cmd, cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "config file (default: .lvpart.yaml in CWD or $HOME)")
	flags.String("objective", config.DefaultObjective, "max or min")
	flags.String("query", config.DefaultQueryMode, "envelope query strategy: binary or pointer")
	flags.String("equal-slopes", config.DefaultEqualSlopes, "zero elements: reject or keep-better")
	flags.StringP("format", "f", config.DefaultFormat, "output format: plain, table, json, yaml")
	flags.Bool("verify", config.DefaultVerify, "cross-check against the O(n^2) DP")
	flags.Int("verify-max-n", config.DefaultVerifyMaxN, "largest n checked by --verify")
	flags.String("log-level", config.DefaultLogLevel, "debug, info, warn or error")
	flags.String("log-format", config.DefaultLogFormat, "text or json")

	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func runSolve(cmd *cobra.Command, cfg *config.Config, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	defer closeInput()

	prob, err := input.Parse(in)
	if err != nil {
		return err
	}

	opts, err := cfg.SolveOptions()
	if err != nil {
		return err
	}

	logger.Debug("solving",
		"n", len(prob.Seq),
		"a", prob.Cost.A, "b", prob.Cost.B, "c", prob.Cost.C,
		"objective", opts.Objective.String(),
		"query", opts.QueryMode.String(),
		"equal_slopes", opts.EqualSlopes.String(),
	)

	res, err := partition.Solve(prob.Seq, prob.Cost, opts)
	if err != nil {
		return err
	}

	logger.Debug("envelope",
		"inserts", res.Stats.Inserts,
		"pops", res.Stats.Pops,
		"discarded", res.Stats.Discarded,
		"queries", res.Stats.Queries,
	)

	summary := report.NewSummary(len(prob.Seq), prob.Cost, opts.Objective, res)

	if cfg.Verify.Enabled {
		summary.Verified, err = verify(logger, prob, opts, res, cfg.Verify.MaxN)
		if err != nil {
			return err
		}
	}

	return report.Write(cmd.OutOrStdout(), cfg.Format(), summary)
}

// verify reruns the problem through SolveNaive when n is within limit.
// It reports whether the check ran.
func verify(logger *slog.Logger, prob input.Problem, opts partition.Options, res partition.Result, limit int) (bool, error) {
	if len(prob.Seq) > limit {
		logger.Warn("verify skipped", "n", len(prob.Seq), "max_n", limit)

		return false, nil
	}

	naive, err := partition.SolveNaive(prob.Seq, prob.Cost, opts)
	if err != nil {
		return false, fmt.Errorf("verify: %w", err)
	}
	if naive.Cost != res.Cost {
		return false, fmt.Errorf("%w: hull %d, naive %d", ErrVerifyMismatch, res.Cost, naive.Cost)
	}

	logger.Info("verified", "n", len(prob.Seq), "cost", res.Cost)

	return true, nil
}

// openInput returns stdin for no argument or "-", otherwise the named file.
func openInput(stdin io.Reader, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == stdinArg {
		return stdin, func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
