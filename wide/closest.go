// SPDX-License-Identifier: MIT

package wide

import "github.com/holiman/uint256"

// Closest computes the root s minimizing |n − s²| over 256-bit inputs that
// may rise or fall between calls. Ties cannot occur for integer inputs.
type Closest struct {
	state
}

// NewClosest returns a closest-root generator seeded with seed (nil means 0).
// Seeds above MaxClosestRoot clamp to it.
func NewClosest(seed *uint256.Int) *Closest {
	g := &Closest{}
	g.Reset(seed)
	return g
}

// Reset reseeds the estimate and clears Moves.
func (g *Closest) Reset(seed *uint256.Int) {
	g.clampSeed(seed, MaxClosestRoot)
	if g.root.IsZero() {
		g.lo.Clear()
		g.hi.Clear()
		return
	}
	prev := new(uint256.Int).SubUint64(&g.root, 1)
	next := new(uint256.Int).AddUint64(&g.root, 1)
	g.lo.Mul(prev, &g.root)
	g.lo.AddUint64(&g.lo, 1)
	saturatingMul(&g.hi, &g.root, next)
}

// Step returns the closest root of n.
//
// Complexity: O(|root(n) − previous root|).
func (g *Closest) Step(n *uint256.Int) *uint256.Int {
	if n.Gt(&g.hi) {
		for n.Gt(&g.hi) {
			g.root.AddUint64(&g.root, 1)
			g.lo.AddUint64(&g.hi, 1)
			saturatingAdd(&g.hi, &g.hi, g.twice())
			g.moves++
		}
	} else {
		for n.Lt(&g.lo) && !g.root.IsZero() {
			g.root.SubUint64(&g.root, 1)
			g.hi.SubUint64(&g.lo, 1)
			if g.root.IsZero() {
				g.lo.Clear()
			} else {
				g.lo.Sub(&g.hi, g.twice())
				g.lo.AddUint64(&g.lo, 1)
			}
			g.moves++
		}
	}
	return g.root.Clone()
}
