// SPDX-License-Identifier: MIT

package floor

import "github.com/katalvlaran/gradsqrt/number"

// Changing computes floor isqrt for inputs that may rise or fall between calls.
type Changing[N, S number.Integer] struct {
	state[N, S]
}

// NewChanging returns a floor generator seeded with the estimate seed.
// The seed only affects how much work the first calls do, never their
// results; 0 is a fine default.
//
// Example:
//
//	g := floor.NewChanging[uint16](uint8(0))
//	g.Step(9) // 3
//	g.Step(8) // 2
func NewChanging[N, S number.Integer](seed S) *Changing[N, S] {
	g := &Changing[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns isqrt(n), walking the estimate up or down one unit at a
// time from the previous answer.
//
// Complexity: O(|isqrt(n) − previous root|).
func (g *Changing[N, S]) Step(n N) S {
	if n > g.hi {
		g.up(n)
	} else {
		g.down(n)
	}
	return g.root
}
