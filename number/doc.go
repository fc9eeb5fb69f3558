// SPDX-License-Identifier: MIT

// Package number defines the numeric capability contract shared by every
// gradual square-root generator in gradsqrt.
//
// A generator is instantiated for a pair of Go integer types:
//
//	N — the input (value) type fed to Step,
//	S — the root (estimate) type returned by Step.
//
// Both must satisfy Integer. S converts into N with a plain conversion, so
// the only arithmetic the generators need is ordering, addition,
// subtraction, "plus/minus one" and, at construction time, a single
// multiplication. This package supplies the pieces Go does not give a
// type parameter for free:
//
//   - Max / IsSigned      — the largest representable value and signedness;
//   - CheckedMul          — multiplication that reports overflow instead of wrapping;
//   - SaturatingAdd / Mul — arithmetic clamped at Max;
//   - MaxRoot             — the largest r with r·r ≤ Max, found without floats;
//   - MaxClosestRoot      — the largest r with r·r − r + 1 ≤ Max;
//   - ClampRoot           — folds a caller-supplied seed into [0, top].
//
// Sizing contract (the caller's responsibility):
//
//	floor mode:   bits(S) ≥ bits(N)/2 for unsigned types;
//	closest mode: S must hold 2^(bits(N)/2), so a same-width S is the safe choice.
//
// All helpers are O(1) except MaxRoot and MaxClosestRoot, which are O(bits(N)).
package number
