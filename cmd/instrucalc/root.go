package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/catalog"
)

func newRootCmd() *cobra.Command {
	reg := catalog.Default()

	root := &cobra.Command{
		Use:   "instrucalc",
		Short: "Instrumentation and measurement formula calculator",
		Long: `instrucalc evaluates the instrumath formulas: sampling and FFT bins,
decibel gain, encoder speed, error budgets, linearization, strain-gauge
bridges, piezo accelerometers, RTDs, Pitot tubes, time-of-flight and
least-squares calibration.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newListCmd(reg),
		newDescribeCmd(reg),
		newEvalCmd(reg),
		newFitCmd(),
		newExamplesCmd(reg),
	)

	return root
}
