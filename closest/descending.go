package closest

import "github.com/katalvlaran/gradsqrt/number"

// Descending computes the closest root for non-increasing inputs.
// Higher inputs than seen before return the current root unchanged.
type Descending[N, S number.Integer] struct {
	state[N, S]
}

// NewDescending returns a descending-only closest-mode generator seeded with seed.
func NewDescending[N, S number.Integer](seed S) *Descending[N, S] {
	g := &Descending[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns the root whose square is nearest to n, assuming n did not increase.
func (g *Descending[N, S]) Step(n N) S {
	g.down(n)
	return g.root
}
