package softf64_test

import (
	"fmt"

	"github.com/pornin/go-softf64/softf64"
)

func ExampleRound() {
	fmt.Println(softf64.Round(2.5), softf64.Round(3.5), softf64.Round(-2.5))
	// Output: 2 4 -2
}

func ExampleSqrt() {
	fmt.Println(softf64.Sqrt(2))
	fmt.Println(softf64.Sqrt(-1))
	// Output:
	// 1.4142135623730951
	// NaN
}

func ExampleModf() {
	num, frac := softf64.Modf(-3.75)
	fmt.Println(num, frac)
	// Output: -3 -0.75
}

func ExampleMax() {
	fmt.Println(softf64.Max(0, softf64.Inf(-1)), softf64.Max(1, softf64.NaN()))
	// Output: 0 NaN
}

func ExampleFloor() {
	fmt.Println(softf64.Floor(-0.5), softf64.Ceil(-0.5), softf64.Trunc(-1.5))
	// Output: -1 -0 -1
}
