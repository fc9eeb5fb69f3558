// SPDX-License-Identifier: MIT

package wide

import "github.com/holiman/uint256"

var (
	// MaxFloorRoot is ⌊√(2²⁵⁶−1)⌋ = 2¹²⁸−1.
	MaxFloorRoot = new(uint256.Int).SubUint64(new(uint256.Int).Lsh(uint256.NewInt(1), 128), 1)

	// MaxClosestRoot is the closest root of 2²⁵⁶−1, which is 2¹²⁸.
	MaxClosestRoot = new(uint256.Int).Lsh(uint256.NewInt(1), 128)
)

// state is the walk shared by Floor and Closest.
type state struct {
	root   uint256.Int
	lo, hi uint256.Int
	moves  uint64
}

// Root returns a copy of the current estimate.
func (st *state) Root() *uint256.Int { return st.root.Clone() }

// Bracket returns copies of the inclusive input range the estimate is
// valid for.
func (st *state) Bracket() (lo, hi *uint256.Int) {
	return st.lo.Clone(), st.hi.Clone()
}

// Moves returns the unit steps taken since the last (re)seed.
func (st *state) Moves() uint64 { return st.moves }

// clampSeed copies seed into root, treating nil as zero and capping at top.
func (st *state) clampSeed(seed, top *uint256.Int) {
	switch {
	case seed == nil:
		st.root.Clear()
	case seed.Gt(top):
		st.root.Set(top)
	default:
		st.root.Set(seed)
	}
	st.moves = 0
}

// twice returns 2·root.
func (st *state) twice() *uint256.Int {
	return new(uint256.Int).Lsh(&st.root, 1)
}

// saturatingAdd sets z = x + y, or 2²⁵⁶−1 on overflow.
func saturatingAdd(z, x, y *uint256.Int) *uint256.Int {
	if _, overflow := z.AddOverflow(x, y); overflow {
		z.SetAllOne()
	}
	return z
}

// saturatingMul sets z = x · y, or 2²⁵⁶−1 on overflow.
func saturatingMul(z, x, y *uint256.Int) *uint256.Int {
	if _, overflow := z.MulOverflow(x, y); overflow {
		z.SetAllOne()
	}
	return z
}
