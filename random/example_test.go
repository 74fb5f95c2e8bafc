package random_test

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-notebook/random"
)

func ExampleSetSeed() {
	random.SetSeed(42)
	a := random.Normal(4, 0, 1)
	b := random.Float64()

	random.SetSeed(42)
	c := random.Normal(4, 0, 1)
	d := random.Float64()

	fmt.Println(slices.Equal(a, c), b == d)
	// Output:
	// true true
}
