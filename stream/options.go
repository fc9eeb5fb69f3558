// SPDX-License-Identifier: MIT

package stream

import "github.com/katalvlaran/gradsqrt/number"

// DefaultScale leaves inputs untouched.
const DefaultScale = 1

const panicScaleInvalid = "stream: WithScale: factor must be ≥ 1"

// Option configures New. Option constructors panic on nonsensical values
// (programmer error); New itself only returns sentinel errors.
type Option[N number.Integer] func(*config[N])

type config[N number.Integer] struct {
	scale N
}

func newConfig[N number.Integer](opts []Option[N]) config[N] {
	cfg := config[N]{scale: DefaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithScale multiplies every input by factor before taking its root,
// trading a longer walk for resolution: with factor k² the root is k times
// the unscaled one, so 64 gives 8× finer steps. Products that overflow N
// saturate at its largest value.
//
// Panics if factor < 1.
func WithScale[N number.Integer](factor N) Option[N] {
	if factor < 1 {
		panic(panicScaleInvalid)
	}
	return func(c *config[N]) {
		c.scale = factor
	}
}
