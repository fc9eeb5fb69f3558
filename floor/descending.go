// SPDX-License-Identifier: MIT

package floor

import "github.com/katalvlaran/gradsqrt/number"

// Descending computes floor isqrt for inputs that never increase.
//
// A higher input than a previous one is answered with the current
// (stale) root; the ordering assumption is not verified.
type Descending[N, S number.Integer] struct {
	state[N, S]
}

// NewDescending returns a descending-only floor generator seeded with seed.
// Seed it at or above the root of the first expected input.
func NewDescending[N, S number.Integer](seed S) *Descending[N, S] {
	g := &Descending[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns isqrt(n) for n at or below every previous input.
//
// Complexity: O(previous root − isqrt(n)).
func (g *Descending[N, S]) Step(n N) S {
	g.down(n)
	return g.root
}
