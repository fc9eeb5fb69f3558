package closest

import "github.com/katalvlaran/gradsqrt/number"

// Ascending computes the closest root for non-decreasing inputs.
// Lower inputs than seen before return the current root unchanged.
type Ascending[N, S number.Integer] struct {
	state[N, S]
}

// NewAscending returns an ascending-only closest-mode generator seeded with seed.
func NewAscending[N, S number.Integer](seed S) *Ascending[N, S] {
	g := &Ascending[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns the root whose square is nearest to n, assuming n did not decrease.
func (g *Ascending[N, S]) Step(n N) S {
	g.up(n)
	return g.root
}
