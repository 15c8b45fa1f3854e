package einfinity_test

import (
	"fmt"

	"github.com/ldelanis/flatsurf/einfinity"
	"github.com/ldelanis/flatsurf/field"
)

// ExampleNewWithLambda runs the weight recurrences over ℚ with λ = 7:
// B(3) = W(2) − B(2) = 29 − 6 = 23 and W(3) = 7·B(3) − W(2) = 132.
func ExampleNewWithLambda() {
	f := field.Q()
	s, _ := einfinity.NewWithLambda(f, f.FromInt(7))

	fmt.Println(s.Black(3), s.White(3))
	fmt.Println(s.Black(-2), s.White(-2))

	// Output:
	// 23 132
	// 23 29
}
