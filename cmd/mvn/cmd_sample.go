package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw samples from the distribution",
		Long: `Draw samples from the configured distribution and print them to stdout.

Examples:
  mvn sample --config params.yaml -n 10
  mvn sample --config params.yaml -n 1000 --format json --seed 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			n, err := s.sampleCount(cmd)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut && !cmd.Flags().Changed("format") {
				format = "json"
			}

			data := s.draw(cmd, n)
			switch format {
			case "csv":
				return writeCSV(cmd.OutOrStdout(), data)
			case "json":
				return json.NewEncoder(cmd.OutOrStdout()).Encode(data)
			default:
				return fmt.Errorf("invalid format: %s (must be csv or json)", format)
			}
		},
	}

	cmd.Flags().IntP("count", "n", 0, "Number of samples (default from config)")
	cmd.Flags().String("format", "csv", "Output format: csv or json")

	return cmd
}

// writeCSV prints one sample per line with shortest round-trip formatting.
func writeCSV(w io.Writer, data [][]float64) error {
	cw := csv.NewWriter(w)
	for _, x := range data {
		rec := make([]string, len(x))
		for i, v := range x {
			rec[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
