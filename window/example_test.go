package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-notebook/window"
)

func ExampleApply() {
	buf := []float64{1, 1, 1, 1, 1}
	window.Apply(window.TypeHann, buf)
	fmt.Printf("%.2f %.2f %.2f\n", buf[0], buf[1], buf[2])
	// Output:
	// 0.00 0.50 1.00
}
