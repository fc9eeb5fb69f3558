package closest

import "github.com/katalvlaran/gradsqrt/number"

// Changing computes the closest root for inputs that may rise or fall between calls.
type Changing[N, S number.Integer] struct {
	state[N, S]
}

// NewChanging returns a closest-mode generator seeded with seed.
func NewChanging[N, S number.Integer](seed S) *Changing[N, S] {
	g := &Changing[N, S]{}
	g.Reset(seed)
	return g
}

// Step returns the root whose square is nearest to n.
func (g *Changing[N, S]) Step(n N) S {
	if n > g.hi {
		g.up(n)
	} else {
		g.down(n)
	}
	return g.root
}
