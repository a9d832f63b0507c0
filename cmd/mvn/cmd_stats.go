package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/mvnormal/mvn"
	"github.com/spf13/cobra"
)

// statsReport compares empirical moments with the configured parameters.
type statsReport struct {
	Samples      int         `json:"samples"`
	Mean         []float64   `json:"mean"`
	Cov          [][]float64 `json:"cov"`
	MaxMeanError float64     `json:"max_mean_error"`
	MaxCovError  float64     `json:"max_cov_error"`
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Compare empirical moments of drawn samples with the parameters",
		Long: `Draw samples and report their empirical mean and covariance, together
with the largest absolute deviation from the configured mean and covariance.

Examples:
  mvn stats --config params.yaml -n 25000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			n, err := s.sampleCount(cmd)
			if err != nil {
				return err
			}

			rep, err := computeStats(s.dist, s.draw(cmd, n))
			if err != nil {
				return err
			}
			s.logger.Debug("stats computed", "samples", n, "max_cov_error", rep.MaxCovError)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(rep)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "samples: %d\n", rep.Samples)
			fmt.Fprintf(out, "empirical mean: %s\n", formatRow(rep.Mean))
			fmt.Fprintln(out, "empirical covariance:")
			for _, row := range rep.Cov {
				fmt.Fprintf(out, "  %s\n", formatRow(row))
			}
			fmt.Fprintf(out, "max |mean error|: %.4f\n", rep.MaxMeanError)
			fmt.Fprintf(out, "max |cov error|:  %.4f\n", rep.MaxCovError)

			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 0, "Number of samples (default from config)")

	return cmd
}

func computeStats(d *mvn.Distribution, data [][]float64) (statsReport, error) {
	mean, cov, err := mvn.EmpiricalMoments(data)
	if err != nil {
		return statsReport{}, err
	}

	rep := statsReport{Samples: len(data), Mean: mean, Cov: cov}
	for i, m := range d.Mean() {
		rep.MaxMeanError = math.Max(rep.MaxMeanError, math.Abs(mean[i]-m))
	}
	for i, row := range d.Cov() {
		for j, c := range row {
			rep.MaxCovError = math.Max(rep.MaxCovError, math.Abs(cov[i][j]-c))
		}
	}

	return rep, nil
}

func formatRow(x []float64) string {
	s := "["
	for i, v := range x {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%8.4f", v)
	}

	return s + "]"
}
