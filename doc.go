// Package gradsqrt computes integer square roots of gradually changing
// streams: sensor readings, accumulating counters, slowly drifting
// magnitudes. Each generator remembers its previous root and walks it one
// unit at a time, so a value close to the last one costs a comparison or
// two instead of a full square root.
//
// 🚀 What is inside?
//
//	• Floor roots:    ⌊√n⌋, the largest s with s² ≤ n
//	• Closest roots:  s minimizing |n − s²|, ties toward the lower root
//	• Three traversals per rounding mode: changing, ascending, descending
//	• Any integer width, signed or unsigned, via Go generics
//	• 256-bit generators for counters that outgrow uint64
//
// ✨ Why gradual?
//
//   - O(|Δroot|) per value: constant for slow streams
//   - Only add, subtract and compare on the hot path
//   - No allocation, no floating point
//   - Deterministic saturation at the top of every integer type
//
// Layout:
//
//	number/             — Integer constraint, Max, saturating arithmetic, MaxRoot
//	bracket/            — input ranges [Lo, Hi] owned by a root estimate
//	floor/              — Changing, Ascending, Descending floor generators
//	closest/            — Changing, Ascending, Descending closest-root generators
//	stream/             — runtime selection: Mode, Traversal, Stepper, New, WithScale
//	wide/               — 256-bit Floor and Closest over holiman/uint256
//	internal/pipeline/  — decimal stream runner used by the CLI
//	cmd/isqrt-stream/   — command-line filter
//
// Quick example:
//
//	g := floor.NewChanging[uint16](uint8(0))
//	g.Step(9) // 3
//	g.Step(8) // 2, one step down
//
//	go get github.com/katalvlaran/gradsqrt
package gradsqrt
