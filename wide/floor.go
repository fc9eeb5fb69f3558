// SPDX-License-Identifier: MIT

package wide

import "github.com/holiman/uint256"

// Floor computes ⌊√n⌋ over 256-bit inputs that may rise or fall between
// calls.
type Floor struct {
	state
}

// NewFloor returns a floor generator seeded with seed (nil means 0).
// Seeds above MaxFloorRoot clamp to it.
func NewFloor(seed *uint256.Int) *Floor {
	g := &Floor{}
	g.Reset(seed)
	return g
}

// Reset reseeds the estimate and clears Moves.
func (g *Floor) Reset(seed *uint256.Int) {
	g.clampSeed(seed, MaxFloorRoot)
	g.lo.Mul(&g.root, &g.root)
	saturatingAdd(&g.hi, &g.lo, g.twice())
}

// Step returns ⌊√n⌋.
//
// Complexity: O(|⌊√n⌋ − previous root|).
func (g *Floor) Step(n *uint256.Int) *uint256.Int {
	if n.Gt(&g.hi) {
		for n.Gt(&g.hi) {
			g.root.AddUint64(&g.root, 1)
			g.lo.AddUint64(&g.hi, 1)
			saturatingAdd(&g.hi, &g.lo, g.twice())
			g.moves++
		}
	} else {
		for n.Lt(&g.lo) && !g.root.IsZero() {
			g.root.SubUint64(&g.root, 1)
			g.hi.SubUint64(&g.lo, 1)
			g.lo.Sub(&g.hi, g.twice())
			g.moves++
		}
	}
	return g.root.Clone()
}
