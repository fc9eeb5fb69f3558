package bracket

import (
	"fmt"

	"github.com/katalvlaran/gradsqrt/number"
)

// Bracket is the inclusive range [Lo, Hi] of inputs covered by one root estimate.
type Bracket[N number.Integer] struct {
	Lo, Hi N
}

// Covers reports whether n lies inside the bracket.
func (b Bracket[N]) Covers(n N) bool {
	return b.Lo <= n && n <= b.Hi
}

// String renders the bracket as "[lo, hi]".
func (b Bracket[N]) String() string {
	return fmt.Sprintf("[%d, %d]", b.Lo, b.Hi)
}

// Floor returns the floor-mode bracket of s: [s², s² + 2s].
// Negative s is treated as 0. Hi saturates at the largest N.
//
// Complexity: O(1).
func Floor[N, S number.Integer](s S) Bracket[N] {
	r := widen[N](s)
	return Bracket[N]{
		Lo: number.SaturatingMul(r, r),
		Hi: number.SaturatingMul(r, number.SaturatingAdd(r, 2)),
	}
}

// Closest returns the closest-mode bracket of s: [s² − s + 1, s² + s],
// or [0, 0] for s = 0. Negative s is treated as 0. Hi saturates at the
// largest N.
//
// Lo is formed as (s−1)·s + 1 so that the top estimate of N, whose
// square itself overflows, still gets an exact lower bound.
//
// Complexity: O(1).
func Closest[N, S number.Integer](s S) Bracket[N] {
	r := widen[N](s)
	if r == 0 {
		return Bracket[N]{}
	}
	return Bracket[N]{
		Lo: number.SaturatingAdd(number.SaturatingMul(r-1, r), 1),
		Hi: number.SaturatingMul(r, number.SaturatingAdd(r, 1)),
	}
}

func widen[N, S number.Integer](s S) N {
	if s < 0 {
		return 0
	}
	return N(s)
}
