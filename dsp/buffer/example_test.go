package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-nmr/dsp/buffer"
)

func ExampleComplex() {
	c := buffer.NewComplex(2)
	c.Set(0, 1, 2)
	c.Set(1, 3, 4)

	fmt.Println(c.Data())
	fmt.Println(c.Active())

	// Output:
	// [0 1 2 3 4 0]
	// [1 2 3 4]
}
