package signal

import (
	"fmt"

	"github.com/arloliu/instrumath/errs"
)

// CorrelationLag returns the non-negative lag, in samples, that maximizes the
// cross-correlation Σ reference[i]·received[i+lag]. Ties resolve to the
// smallest lag. The result feeds TimeOfFlight.
func CorrelationLag(reference, received []float64) (int, error) {
	if len(reference) == 0 || len(received) == 0 {
		return 0, fmt.Errorf("%w: reference has %d samples, received has %d",
			errs.ErrInsufficientData, len(reference), len(received))
	}

	best, bestSum := 0, 0.0
	for lag := range received {
		sum := 0.0
		for i, r := range reference {
			j := i + lag
			if j >= len(received) {
				break
			}
			sum += r * received[j]
		}
		if lag == 0 || sum > bestSum {
			best, bestSum = lag, sum
		}
	}

	return best, nil
}
