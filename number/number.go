// SPDX-License-Identifier: MIT

package number

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the capability every input and root type must provide:
// a built-in signed or unsigned integer (or a type defined over one).
type Integer interface {
	constraints.Integer
}

// allOnes is the widest unsigned bit pattern we shift down to build a signed maximum.
const allOnes = ^uint64(0)

// IsSigned reports whether N is a signed integer type.
func IsSigned[N Integer]() bool {
	return ^N(0) < 0
}

// Max returns the largest value representable by N.
func Max[N Integer]() N {
	var zero N
	if IsSigned[N]() {
		bits := 8 * unsafe.Sizeof(zero)
		return N(allOnes >> (65 - bits))
	}
	return ^zero
}

// CheckedMul returns a*b and true, or zero and false when the product
// does not fit in N. Both operands must be non-negative.
func CheckedMul[N Integer](a, b N) (N, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > Max[N]()/b {
		return 0, false
	}
	return a * b, true
}

// SaturatingMul returns a*b, or Max[N] when the product overflows.
// Both operands must be non-negative.
func SaturatingMul[N Integer](a, b N) N {
	p, ok := CheckedMul(a, b)
	if !ok {
		return Max[N]()
	}
	return p
}

// SaturatingAdd returns a+b, or Max[N] when the sum overflows.
// b must be non-negative.
func SaturatingAdd[N Integer](a, b N) N {
	if a > Max[N]()-b {
		return Max[N]()
	}
	return a + b
}

// MaxRoot returns the largest r such that r*r ≤ Max[N].
//
// Implementation: binary search on [0, Max[N]] comparing mid against
// Max/mid, so no intermediate product is ever formed.
//
// Complexity: O(bits(N)) time, O(1) space.
func MaxRoot[N Integer]() N {
	limit := Max[N]()
	lo, hi := N(0), limit
	for lo < hi {
		// upper midpoint: guarantees progress when hi == lo+1
		mid := hi - (hi-lo)/2
		if mid <= limit/mid {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// MaxClosestRoot returns the largest r whose closest-mode bracket starts
// inside N, i.e. r² − r + 1 ≤ Max[N]. It is MaxRoot[N] or one more:
// closest(65535) = 256 even though 256² does not fit in uint16.
func MaxClosestRoot[N Integer]() N {
	r := MaxRoot[N]()
	if p, ok := CheckedMul(r, r+1); ok && p < Max[N]() {
		return r + 1
	}
	return r
}

// ClampRoot folds a seed estimate into [0, top], the range a generator can
// start from. top is MaxRoot[N] for floor mode and MaxClosestRoot[N] for
// closest mode.
func ClampRoot[N, S Integer](seed S, top N) S {
	if seed < 0 {
		return 0
	}
	if t := S(top); t >= 0 && N(t) == top {
		if seed > t {
			return t
		}
		return seed
	}
	// top lies beyond S, so every non-negative seed is already below it
	return seed
}
