// Package bracket defines the inclusive input range for which a root
// estimate is the correct answer under each rounding mode.
//
// For an estimate s (widened into the input type N):
//
//	mode     Lo(s)                 Hi(s)
//	floor    s²                    s² + 2s     ( = (s+1)² − 1 )
//	closest  s² − s + 1  (s ≥ 1)   s² + s
//	         0           (s = 0)
//
// An input n is covered by s iff Lo(s) ≤ n ≤ Hi(s). Consecutive brackets
// tile the non-negative integers without gaps or overlap:
//
//	Lo(s+1) = Hi(s) + 1
//
// which is what lets a generator walk from one bracket to the next with a
// single addition instead of a multiplication.
//
// The closest brackets put the tie point s² + s (equidistant from s² and
// (s+1)²) in the lower bracket, so ties round toward the smaller root.
//
//	s   floor [Lo,Hi]   closest [Lo,Hi]
//	0   [0, 0]          [0, 0]
//	1   [1, 3]          [1, 2]
//	2   [4, 8]          [3, 6]
//	3   [9, 15]         [7, 12]
//	4   [16, 24]        [13, 20]
//
// Both relations saturate: a bound that does not fit in N is reported as
// the largest N.
package bracket
