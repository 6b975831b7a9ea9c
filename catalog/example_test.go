package catalog_test

import (
	"fmt"
	"log"

	"github.com/arloliu/instrumath/catalog"
)

func ExampleRegistry_Eval() {
	reg := catalog.Default()

	res, err := reg.Eval("bridge", catalog.Args{
		"u0":     "10",
		"k":      "2",
		"strain": "1e-3",
		"type":   "quarter",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res)

	// Output:
	// bridge: Um = 0.005 V
	//   Um = 5 mV
}

func ExampleRegistry_Lookup() {
	reg := catalog.Default()

	f, err := reg.Lookup("pitot")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(f.Name, f.Category)
	for _, p := range f.Params {
		fmt.Printf("  %s [%s] default=%q\n", p.Name, p.Unit, p.Default)
	}

	// Output:
	// pitot Sensor
	//   dp [Pa] default=""
	//   mm-h2o [mm] default=""
	//   rho [kg/m³] default="1.225"
}
