package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/fftvec/dsp/spectrum"
)

func ExampleDFT() {
	x := []complex128{1, 1, 1, 1}

	bins, err := spectrum.DFT(x, spectrum.WithBackend(spectrum.BackendDirect))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.1f\n", spectrum.Magnitude(bins))

	// Output:
	// [4.0 0.0 0.0 0.0]
}
