package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/mvnormal/internal/config"
	"github.com/katalvlaran/mvnormal/internal/logging"
	"github.com/katalvlaran/mvnormal/mvn"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mvn",
		Short: "Multivariate normal sampling",
		Long: `mvn validates multivariate normal parameters and draws samples from them.

The mean vector and covariance matrix are read from a YAML config file:

  mean: [1, 2, 3]
  cov:
    - [1.0, 0.0, 0.9]
    - [0.0, 1.0, 0.0]
    - [0.9, 0.0, 1.0]
  seed: 42`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace (overrides config)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for reproducible sampling (overrides config)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newValidateCmd(),
		newSampleCmd(),
		newStatsCmd(),
		newPlotCmd(),
	)

	return rootCmd
}

// session bundles what every sampling command needs.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	dist   *mvn.Distribution
}

// openSession loads the config, applies flag overrides, builds the logger
// and validates the distribution parameters.
func openSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		cfg.Seed = &seed
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	if jsonOut {
		logger = logging.NewJSONLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	}

	opts := []mvn.Option{mvn.WithLogger(logger)}
	if cfg.Seed != nil {
		opts = append(opts, mvn.WithSeed(*cfg.Seed))
	}
	dist, err := mvn.FromValues(cfg.Mean, cfg.Cov, opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("parameters loaded", "config", path, "dim", dist.Dim(), "seeded", cfg.Seed != nil)

	return &session{cfg: cfg, logger: logger, dist: dist}, nil
}

// draw takes n samples, logging each at trace level.
func (s *session) draw(cmd *cobra.Command, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = s.dist.Sample()
		s.logger.Log(cmd.Context(), logging.LevelTrace, "sample", "i", i, "x", out[i])
	}

	return out
}

// sampleCount resolves the --count/-n flag against the configured default.
func (s *session) sampleCount(cmd *cobra.Command) (int, error) {
	if !cmd.Flags().Changed("count") {
		return s.cfg.Samples, nil
	}
	n, _ := cmd.Flags().GetInt("count")
	if n <= 0 {
		return 0, fmt.Errorf("-n must be positive, got %d", n)
	}

	return n, nil
}
