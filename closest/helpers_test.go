package closest_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/gradsqrt/number"
)

type stepper[N, S number.Integer] interface {
	Step(n N) S
}

func collect[N, S number.Integer](g stepper[N, S], inputs []N) []S {
	out := make([]S, 0, len(inputs))
	for _, n := range inputs {
		out = append(out, g.Step(n))
	}
	return out
}

// upTo returns 0, 1, …, n-1.
func upTo[N number.Integer](n int) []N {
	out := make([]N, n)
	for i := range out {
		out[i] = N(i)
	}
	return out
}

// downFrom returns n-1, n-2, …, 0.
func downFrom[N number.Integer](n int) []N {
	out := make([]N, n)
	for i := range out {
		out[i] = N(n - 1 - i)
	}
	return out
}

func dist(n, s int64) int64 {
	d := n - s*s
	if d < 0 {
		return -d
	}
	return d
}

// isClosestRoot reports whether s² is at least as near to n as the squares
// of both neighbours, and whether ties went to the lower root.
func isClosestRoot(n, s int64) bool {
	d := dist(n, s)
	if s > 0 && d > dist(n, s-1) {
		return false
	}
	if d > dist(n, s+1) {
		return false
	}
	// a tie with s-1 must have been resolved toward s-1
	return s == 0 || d != dist(n, s-1)
}

func requireClosestRoot(t *testing.T, g any, n, s int64) {
	t.Helper()
	if !isClosestRoot(n, s) {
		t.Fatalf("closest root of %d: got %d\n%s", n, s, spew.Sdump(g))
	}
}
