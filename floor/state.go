// SPDX-License-Identifier: MIT

package floor

import (
	"github.com/katalvlaran/gradsqrt/bracket"
	"github.com/katalvlaran/gradsqrt/number"
)

// state is the estimate and its bracket, shared by the three traversal variants.
//
// Invariant: [lo, hi] = bracket.Floor(root), except that hi is clamped to
// the largest N and, once root reaches the largest S, n may exceed hi.
type state[N, S number.Integer] struct {
	root   S
	lo, hi N
	moves  uint64
}

// Root returns the current estimate.
func (st *state[N, S]) Root() S { return st.root }

// Bracket returns the inputs the current estimate is valid for.
func (st *state[N, S]) Bracket() bracket.Bracket[N] {
	return bracket.Bracket[N]{Lo: st.lo, Hi: st.hi}
}

// Moves returns how many unit steps the estimate has taken since the last
// (re)seed. A call answered inside the current bracket adds nothing.
func (st *state[N, S]) Moves() uint64 { return st.moves }

// Reset reseeds the generator, e.g. after a known discontinuity in the
// input stream. The bracket is recomputed from scratch and Moves restarts
// at zero.
//
// Complexity: O(1).
func (st *state[N, S]) Reset(seed S) {
	st.root = number.ClampRoot(seed, number.MaxRoot[N]())
	b := bracket.Floor[N](st.root)
	st.lo, st.hi = b.Lo, b.Hi
	st.moves = 0
}

// up raises the estimate until n ≤ hi:
//
//	lo(s+1) = hi(s) + 1,  hi(s+1) = lo(s+1) + 2(s+1)
func (st *state[N, S]) up(n N) {
	top := number.Max[S]()
	for n > st.hi && st.root < top {
		st.root++
		s := N(st.root)
		// n > hi, so hi+1 cannot overflow
		st.lo = st.hi + 1
		st.hi = number.SaturatingAdd(st.lo, s+s)
		st.moves++
	}
}

// down lowers the estimate until n ≥ lo:
//
//	hi(s−1) = lo(s) − 1,  lo(s−1) = hi(s−1) − 2(s−1)
//
// At s = 0 the bracket starts at 0, so only negative inputs of a signed N
// could ask for more; the walk stops there.
func (st *state[N, S]) down(n N) {
	for n < st.lo && st.root > 0 {
		st.root--
		s := N(st.root)
		st.hi = st.lo - 1
		st.lo = st.hi - s - s
		st.moves++
	}
}
