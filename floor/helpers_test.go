// SPDX-License-Identifier: MIT

package floor_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/gradsqrt/number"
)

// stepper is the slice of the generator surface the helpers need.
type stepper[N, S number.Integer] interface {
	Step(n N) S
}

// collect feeds inputs to g in order and returns every answer.
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

// isFloorRoot reports s² ≤ n < (s+1)² for n < 2^32.
func isFloorRoot(n, s uint64) bool {
	return s*s <= n && (s+1)*(s+1) > n
}

// requireFloorRoot fails with a dump of the generator state on a wrong answer.
func requireFloorRoot(t *testing.T, g any, n, s uint64) {
	t.Helper()
	if !isFloorRoot(n, s) {
		t.Fatalf("isqrt(%d): got %d\n%s", n, s, spew.Sdump(g))
	}
}
