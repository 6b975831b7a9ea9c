package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/instrumath/catalog"
)

type workedExample struct {
	title   string
	formula string
	args    catalog.Args
}

var workedExamples = []workedExample{
	{
		title:   "FFT resolution for 128 points sampled at 1 kHz",
		formula: "fft-bins",
		args:    catalog.Args{"n": "128", "fs": "1000"},
	},
	{
		title:   "Multimeter reading 150 V on the 200 V range, ±(1.5% reading + 0.5% range)",
		formula: "total-error",
		args:    catalog.Args{"reading": "150", "span": "200", "pct-reading": "1.5", "pct-range": "0.5"},
	},
	{
		title:   "Quarter bridge, 10 V excitation, K = 2, 1000 µstrain",
		formula: "bridge",
		args:    catalog.Args{"u0": "10", "k": "2", "strain": "1e-3", "type": "quarter"},
	},
	{
		title:   "Pitot tube, ΔP = 500 Pa in air",
		formula: "pitot",
		args:    catalog.Args{"dp": "500", "rho": "1.225"},
	},
	{
		title:   "Piezo accelerometer, β = 2.26 pC/N, 1 g seismic mass, 20 pF, 1 g acceleration",
		formula: "piezo",
		args:    catalog.Args{"beta": "2.26e-12", "mass": "0.001", "c-cable": "20e-12", "c-amp": "0", "accel": "9.81"},
	},
	{
		title:   "Least-squares calibration line through 3 points",
		formula: "linear-fit",
		args:    catalog.Args{"x": "0.5,1.5,2.5", "y": "0.35,0.67,1.14"},
	},
	{
		title:   "Direct time of flight, correlation lag of 85 samples at 48 kHz",
		formula: "time-of-flight",
		args:    catalog.Args{"lag": "85", "fs": "48000", "mode": "direct"},
	},
}

func newExamplesCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Run the worked exam examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for i, ex := range workedExamples {
				res, err := reg.Eval(ex.formula, ex.args)
				if err != nil {
					return fmt.Errorf("example %d (%s): %w", i+1, ex.formula, err)
				}
				fmt.Fprintf(out, "--- Example %d: %s\n%s\n\n", i+1, ex.title, res)
			}

			return nil
		},
	}
}
