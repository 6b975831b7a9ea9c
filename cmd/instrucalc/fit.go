package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/regression"
)

func newFitCmd() *cobra.Command {
	var (
		xs, ys []float64
		all    bool
		models []string
	)

	cmd := &cobra.Command{
		Use:   "fit --x x1,x2,... --y y1,y2,...",
		Short: "Fit a calibration line (or every calibration curve with --all)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !all {
				fit, err := regression.FitLinear(xs, ys)
				if err != nil {
					return err
				}

				fmt.Fprintln(out, fit)
				for i, e := range fit.Residuals {
					fmt.Fprintf(out, "  x=%-10g y=%-10g e=%+.4f\n", xs[i], ys[i], e)
				}

				return nil
			}

			var opts []regression.AnalyzeOption
			if len(models) > 0 {
				types := make([]regression.ModelType, 0, len(models))
				for _, name := range models {
					mt := regression.ModelTypeFromString(name)
					if mt == regression.ModelType(-1) {
						return fmt.Errorf("unknown model %q", name)
					}
					types = append(types, mt)
				}
				opts = append(opts, regression.WithModels(types...))
			}

			res, err := regression.Analyze(xs, ys, opts...)
			if err != nil {
				return err
			}

			for i, m := range res.AllModels {
				marker := " "
				if i == 0 {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-12s R²=%.6f RMSE=%.4g  %s\n", marker, m.Type, m.RSquared, m.RMSE, m.Formula)
			}
			for _, mt := range res.Skipped {
				fmt.Fprintf(out, "  %-12s skipped\n", mt)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&xs, "x", nil, "stimulus values")
	flags.Float64SliceVar(&ys, "y", nil, "measured values")
	flags.BoolVar(&all, "all", false, "fit every calibration curve and rank them by R²")
	flags.StringSliceVar(&models, "models", nil, "restrict --all to these models")
	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
