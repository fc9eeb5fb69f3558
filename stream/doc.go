// SPDX-License-Identifier: MIT

// Package stream selects a gradual square-root generator at run time.
//
// The generator packages (floor, closest) expose six concrete types, which
// is what library code should use when the rounding mode and traversal are
// known at compile time. Tools that take them from flags or configuration
// use this package instead:
//
//	mode, _ := stream.ParseMode("closest")
//	trav, _ := stream.ParseTraversal("ascending")
//	st, err := stream.New[uint32, uint32](mode, trav, 0, stream.WithScale[uint32](64))
//	if err != nil {
//	    // ErrUnknownMode / ErrUnknownTraversal
//	}
//	root := st.Step(reading)
//
// Every concrete generator satisfies Stepper, so New adds no behavior of
// its own beyond the optional input scaling.
package stream
