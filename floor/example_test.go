package floor_test

import (
	"fmt"

	"github.com/katalvlaran/gradsqrt/floor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewAscending
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A counter that only grows: 0, 1, …, 16.
//	The root type is half as wide as the counter (uint16 → uint8).
//
// Complexity: O(1) amortized per call, one addition per root change.
func ExampleNewAscending() {
	g := floor.NewAscending[uint16](uint8(0))
	var roots []uint8
	for n := uint16(0); n < 17; n++ {
		roots = append(roots, g.Step(n))
	}
	fmt.Println(roots)
	// Output:
	// [0 1 1 1 2 2 2 2 2 3 3 3 3 3 3 3 4]
}

// ExampleNewAscending_scaled multiplies inputs by 64 to gain 8× resolution:
// isqrt(15·64) = 30, and 30/8 = 3.75 is much closer to √15 than 3 is.
func ExampleNewAscending_scaled() {
	g := floor.NewAscending[uint16](uint8(0))
	var roots []uint8
	for n := uint16(0); n < 17; n++ {
		roots = append(roots, g.Step(64*n))
	}
	fmt.Println(roots)
	// Output:
	// [0 8 11 13 16 17 19 21 22 24 25 26 27 28 29 30 32]
}

// ExampleNewChanging follows a value that rises and then falls back.
func ExampleNewChanging() {
	g := floor.NewChanging[uint16](uint8(0))
	var roots []uint8
	for _, n := range []uint16{0, 3, 8, 9, 30, 9, 8, 3, 0} {
		roots = append(roots, g.Step(n))
	}
	fmt.Println(roots)
	fmt.Println("moves:", g.Moves())
	// Output:
	// [0 1 2 3 5 3 2 1 0]
	// moves: 10
}

// ExampleNewDescending drains a value from 9 down to 0.
func ExampleNewDescending() {
	g := floor.NewDescending[uint16](uint8(5))
	var roots []uint8
	for n := 9; n >= 0; n-- {
		roots = append(roots, g.Step(uint16(n)))
	}
	fmt.Println(roots)
	fmt.Println("bracket:", g.Bracket())
	// Output:
	// [3 2 2 2 2 2 1 1 1 0]
	// bracket: [0, 0]
}
