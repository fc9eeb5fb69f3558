// SPDX-License-Identifier: MIT

// Package wide provides gradual square-root generators over 256-bit
// unsigned integers (github.com/holiman/uint256).
//
// They serve accumulating counters that outgrow uint64: token supplies,
// summed squared magnitudes, wei balances. Both generators assume a
// changing traversal and follow the same walk as floor.Changing and
// closest.Changing:
//
//	Floor:   bracket [s², s²+2s]     root = ⌊√n⌋
//	Closest: bracket [s²−s+1, s²+s]  root = argmin |n − s²|, ties low
//
// Roots fit in 129 bits: the largest floor root is 2¹²⁸−1 and the largest
// closest root is 2¹²⁸. Seeds above those clamp. Brackets saturate at
// 2²⁵⁶−1.
//
// Every value handed out (Step, Root, Bracket) is a fresh copy; inputs are
// never retained.
package wide
