// SPDX-License-Identifier: MIT

package floor

import "github.com/katalvlaran/gradsqrt/number"

// Ascending computes floor isqrt for inputs that never decrease.
//
// A lower input than a previous one is answered with the current
// (stale) root; the ordering assumption is not verified.
type Ascending[N, S number.Integer] struct {
	state[N, S]
}

// NewAscending returns an ascending-only floor generator seeded with seed.
// Seed it at or below the root of the first expected input.
func NewAscending[N, S number.Integer](seed S) *Ascending[N, S] {
	g := &Ascending[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns isqrt(n) for n at or above every previous input.
//
// Complexity: O(isqrt(n) − previous root).
func (g *Ascending[N, S]) Step(n N) S {
	g.up(n)
	return g.root
}
