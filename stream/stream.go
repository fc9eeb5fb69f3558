// SPDX-License-Identifier: MIT

package stream

import (
	"fmt"

	"github.com/katalvlaran/gradsqrt/closest"
	"github.com/katalvlaran/gradsqrt/floor"
	"github.com/katalvlaran/gradsqrt/number"
)

// New builds the generator for (mode, traversal) seeded with seed.
//
// Errors:
//   - ErrUnknownMode      — mode is not Floor or Closest.
//   - ErrUnknownTraversal — traversal is not Changing, Ascending or Descending.
func New[N, S number.Integer](mode Mode, traversal Traversal, seed S, opts ...Option[N]) (Stepper[N, S], error) {
	var st Stepper[N, S]
	switch mode {
	case Floor:
		switch traversal {
		case Changing:
			st = floor.NewChanging[N](seed)
		case Ascending:
			st = floor.NewAscending[N](seed)
		case Descending:
			st = floor.NewDescending[N](seed)
		}
	case Closest:
		switch traversal {
		case Changing:
			st = closest.NewChanging[N](seed)
		case Ascending:
			st = closest.NewAscending[N](seed)
		case Descending:
			st = closest.NewDescending[N](seed)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	if st == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownTraversal, traversal)
	}

	cfg := newConfig(opts)
	if cfg.scale != DefaultScale {
		st = &scaled[N, S]{Stepper: st, factor: cfg.scale}
	}
	return st, nil
}

// scaled pre-multiplies inputs before handing them to the wrapped generator.
type scaled[N, S number.Integer] struct {
	Stepper[N, S]
	factor N
}

func (s *scaled[N, S]) Step(n N) S {
	if n <= 0 {
		// every non-positive input already maps to root 0
		return s.Stepper.Step(n)
	}
	return s.Stepper.Step(number.SaturatingMul(n, s.factor))
}
