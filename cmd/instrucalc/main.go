// Command instrucalc evaluates instrumentation formulas from the command line.
//
// Usage:
//
//	instrucalc list
//	instrucalc describe pitot
//	instrucalc eval pitot dp=500
//	instrucalc fit --x 0.5,1.5,2.5 --y 0.35,0.67,1.14
//	instrucalc fit --all --x 1,2,3,4 --y 5,3.5,3,2.75
//	instrucalc examples
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
