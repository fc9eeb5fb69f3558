// Package closest provides incremental nearest integer square roots for
// gradually changing inputs: the returned s minimizes |n − s²| over all
// non-negative integers, with ties rounded toward the smaller root.
//
// Where floor.Changing answers isqrt(15) = 3, closest answers 4, because
// 16 is nearer to 15 than 9 is. The tie point s² + s (e.g. 12 between 9
// and 16) stays with s.
//
// The walk is the same as in package floor, over the brackets
//
//	[s² − s + 1, s² + s]   (and [0, 0] for s = 0)
//
// so moving one root unit costs one addition:
//
//	up:    lo = hi + 1,  hi = hi + 2s
//	down:  hi = lo − 1,  lo = hi − 2s + 1   (lo = 0 once s reaches 0)
//
// Variants: Changing (either direction), Ascending (non-decreasing inputs
// assumed), Descending (non-increasing inputs assumed). As in package
// floor, a violated direction assumption yields the previous root.
//
// Type sizing: the closest root of the largest N can be 2^(bits(N)/2),
// one more than fits in a half-width type (closest(65535) = 256), so use
// a root type as wide as the input type, or accept that the estimate
// stops at the largest S. The upper bound saturates at the largest N.
//
// Complexity: O(|Δs|) per call, O(1) memory.
package closest
