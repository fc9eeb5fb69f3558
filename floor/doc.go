// SPDX-License-Identifier: MIT

// Package floor provides incremental truncating integer square roots
// (isqrt(n) = the largest s with s² ≤ n) for gradually changing inputs.
//
// 🚀 What is a gradual isqrt?
//
//	Instead of searching for √n from scratch on every call, a generator
//	remembers the last root s and the bracket [s², s² + 2s] it is valid
//	for. The next input is answered with zero work when it falls inside
//	that bracket, and otherwise with one addition per unit the root moves:
//
//	  last n = 133 → s = 11, valid up to 143
//	  next n = 136 → still 11, no work
//	  next n = 145 → 11 is too low: lo = 144, hi = 144 + 2·12 = 168 → s = 12
//
//	Good fits: sensor magnitudes (isqrt(x² + y²) from an accelerometer),
//	accumulating counters, any stream that does not jump around wildly,
//	on hardware without an FPU or fast division.
//
// ✨ Variants:
//   - Changing   — inputs may move in either direction between calls;
//   - Ascending  — inputs are assumed non-decreasing (only walks up);
//   - Descending — inputs are assumed non-increasing (only walks down).
//
// The direction assumption of Ascending/Descending is not checked: an
// out-of-order input returns the previous (stale) root unchanged.
//
// ⚙️ Usage:
//
//	g := floor.NewAscending[uint16](uint8(0))
//	for n := uint16(0); n < 17; n++ {
//	    s := g.Step(n) // 0 1 1 1 2 2 2 2 2 3 3 3 3 3 3 3 4
//	}
//
// Type sizing: with unsigned types the root type S must be at least half
// as wide as the input type N (uint16 → uint8, uint64 → uint32).
//
// Boundaries: the upper bound saturates at the largest N, the estimate
// never rises above the largest S and never falls below zero, and seeds
// are clamped into [0, number.MaxRoot[N]]. Negative inputs of signed
// types map to 0.
//
// Performance:
//
//   - Time:   O(|Δs|) per call, O(√n) worst case for a single large jump
//   - Memory: O(1)
//
// Concurrency: a generator is single-owner state. Use one generator per
// stream, or serialize access externally.
package floor
