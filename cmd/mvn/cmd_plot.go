package main

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/mvnormal/internal/plotting"
	"github.com/spf13/cobra"
)

func newPlotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render a 2D scatter plot of drawn samples",
		Long: `Draw samples and render two of their dimensions as a scatter plot.
The image format follows the output file extension (png, svg, pdf).

Examples:
  mvn plot --config params.yaml --out cloud.png
  mvn plot --config params.yaml -n 2000 --x 0 --y 2 --out cloud.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			n, err := s.sampleCount(cmd)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			sc := plotting.Scatter{X: s.cfg.Plot.X, Y: s.cfg.Plot.Y}
			if cmd.Flags().Changed("x") {
				sc.X, _ = cmd.Flags().GetInt("x")
			}
			if cmd.Flags().Changed("y") {
				sc.Y, _ = cmd.Flags().GetInt("y")
			}
			if sc.Width, err = plotting.ParseWidth(s.cfg.Plot.Width); err != nil {
				return err
			}
			sc.Title = fmt.Sprintf("%d samples, x[%d] vs x[%d]", n, sc.X, sc.Y)

			if err = sc.Save(out, s.draw(cmd, n)); err != nil {
				return err
			}
			s.logger.Info("plot written", "path", out, "samples", n)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
					"path":    out,
					"samples": n,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)

			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 0, "Number of samples (default from config)")
	cmd.Flags().String("out", "samples.png", "Output image path")
	cmd.Flags().Int("x", 0, "Dimension on the horizontal axis (default from config)")
	cmd.Flags().Int("y", 1, "Dimension on the vertical axis (default from config)")

	return cmd
}
