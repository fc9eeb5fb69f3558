package closest

import (
	"github.com/katalvlaran/gradsqrt/bracket"
	"github.com/katalvlaran/gradsqrt/number"
)

// state is the estimate and its closest-mode bracket, shared by the three variants.
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

// Moves returns how many unit steps the estimate has taken since the last (re)seed.
func (st *state[N, S]) Moves() uint64 { return st.moves }

// Reset reseeds the generator and recomputes the bracket from scratch.
// Negative seeds start at 0; seeds whose bracket would start beyond N
// start at number.MaxClosestRoot[N].
func (st *state[N, S]) Reset(seed S) {
	st.root = number.ClampRoot(seed, number.MaxClosestRoot[N]())
	b := bracket.Closest[N](st.root)
	st.lo, st.hi = b.Lo, b.Hi
	st.moves = 0
}

func (st *state[N, S]) up(n N) {
	top := number.Max[S]()
	for n > st.hi && st.root < top {
		st.root++
		s := N(st.root)
		st.lo = st.hi + 1
		st.hi = number.SaturatingAdd(st.hi, s+s)
		st.moves++
	}
}

func (st *state[N, S]) down(n N) {
	for n < st.lo && st.root > 0 {
		st.root--
		st.hi = st.lo - 1
		if st.root == 0 {
			// s² − s + 1 would give 1; the bracket of 0 starts at 0
			st.lo = 0
		} else {
			s := N(st.root)
			st.lo = st.hi - s - s + 1
		}
		st.moves++
	}
}
