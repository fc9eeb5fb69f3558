// SPDX-License-Identifier: MIT

package stream

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gradsqrt/bracket"
	"github.com/katalvlaran/gradsqrt/closest"
	"github.com/katalvlaran/gradsqrt/floor"
	"github.com/katalvlaran/gradsqrt/number"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrUnknownMode indicates a rounding mode name or value outside Mode.
	ErrUnknownMode = errors.New("stream: unknown mode")

	// ErrUnknownTraversal indicates a traversal name or value outside Traversal.
	ErrUnknownTraversal = errors.New("stream: unknown traversal")
)

// Stepper is the surface shared by every gradual square-root generator.
type Stepper[N, S number.Integer] interface {
	// Step consumes one input and returns its root.
	Step(n N) S
	// Root returns the current estimate without consuming input.
	Root() S
	// Bracket returns the inputs the current estimate is valid for.
	Bracket() bracket.Bracket[N]
	// Reset reseeds the estimate after a known discontinuity.
	Reset(seed S)
	// Moves returns the unit steps taken since the last (re)seed.
	Moves() uint64
}

// compile-time guarantees
var (
	_ Stepper[uint16, uint8] = (*floor.Changing[uint16, uint8])(nil)
	_ Stepper[uint16, uint8] = (*floor.Ascending[uint16, uint8])(nil)
	_ Stepper[uint16, uint8] = (*floor.Descending[uint16, uint8])(nil)
	_ Stepper[uint16, uint8] = (*closest.Changing[uint16, uint8])(nil)
	_ Stepper[uint16, uint8] = (*closest.Ascending[uint16, uint8])(nil)
	_ Stepper[uint16, uint8] = (*closest.Descending[uint16, uint8])(nil)
)

// Mode is the rounding rule applied to each root.
type Mode int

const (
	// Floor returns the largest s with s² ≤ n.
	Floor Mode = iota
	// Closest returns the s minimizing |n − s²|, ties toward the lower root.
	Closest
)

var modeNames = map[Mode]string{
	Floor:   "floor",
	Closest: "closest",
}

// String returns the lower-case name accepted by ParseMode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a case-insensitive name into a Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Traversal is the assumption made about the order of successive inputs.
type Traversal int

const (
	// Changing allows inputs to move in either direction.
	Changing Traversal = iota
	// Ascending assumes inputs never decrease.
	Ascending
	// Descending assumes inputs never increase.
	Descending
)

var traversalNames = map[Traversal]string{
	Changing:   "changing",
	Ascending:  "ascending",
	Descending: "descending",
}

// String returns the lower-case name accepted by ParseTraversal.
func (t Traversal) String() string {
	if name, ok := traversalNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Traversal(%d)", int(t))
}

// ParseTraversal converts a case-insensitive name into a Traversal.
// "bidirectional" is accepted as an alias of "changing".
func ParseTraversal(name string) (Traversal, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "bidirectional" {
		return Changing, nil
	}
	for t, n := range traversalNames {
		if n == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, name)
}
