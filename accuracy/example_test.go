package accuracy_test

import (
	"fmt"
	"log"

	"github.com/arloliu/instrumath/accuracy"
)

// ExampleTotalError reproduces a multimeter budget: 150 V read on the 200 V
// range with ±(1.5% reading + 0.5% range).
func ExampleTotalError() {
	r, err := accuracy.TotalError(150, 200, 1.5, 0.5)
	if err != nil {
		log.Fatal(err)
	}
	rel, _ := r.Lookup("relative")
	fmt.Printf("±%.4f V (%.4f%%)\n", r.Float(), rel.Value)

	// Output:
	// ±3.2500 V (2.1667%)
}

// ExampleLinearize linearizes y = x² around x0 = 2 and evaluates it at 3.
func ExampleLinearize() {
	r, err := accuracy.Linearize(func(x float64) float64 { return x * x }, 2, 3)
	if err != nil {
		log.Fatal(err)
	}
	e, _ := r.Lookup("error")
	fmt.Printf("y_lin=%.4f error=%.4f\n", r.Float(), e.Value)

	// Output:
	// y_lin=8.0000 error=1.0000
}
