// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for normalization and shuffling.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - The degenerate policy only matters for rows whose max equals min.
//   - Randomness is never global: Shuffled draws from the injected *rand.Rand,
//     or from a fresh PCG source seeded per call when none is given.
package matrix

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// DegeneratePolicy selects how a row with zero spread (max == min) is scaled.
type DegeneratePolicy int

const (
	// DegenerateZero writes 0.0 into every cell of a degenerate row.
	DegenerateZero DegeneratePolicy = iota

	// DegenerateNaN writes NaN, mirroring the raw 0/0 division result.
	DegenerateNaN

	// DegenerateReject fails the whole normalization with ErrDegenerateRow.
	DegenerateReject
)

// String returns the policy name.
func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateZero:
		return "zero"
	case DegenerateNaN:
		return "nan"
	case DegenerateReject:
		return "reject"
	default:
		return "unknown"
	}
}

// DefaultDegeneratePolicy keeps every cell inside [0,1].
const DefaultDegeneratePolicy = DegenerateZero

const (
	panicPolicyInvalid = "matrix: WithDegeneratePolicy: unknown policy"
	panicRandNil       = "matrix: WithRand: rng must be non-nil"
	panicLoggerNil     = "matrix: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved configuration. Fields are unexported; build it
// through NewOptions or pass Option values to the operations directly.
type Options struct {
	policy DegeneratePolicy
	rng    *rand.Rand
	logger logrus.FieldLogger
}

// WithDegeneratePolicy selects the degenerate-row policy used by Normalize.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	if p < DegenerateZero || p > DegenerateReject {
		panic(panicPolicyInvalid)
	}

	return func(o *Options) { o.policy = p }
}

// WithRand injects the random source used by Shuffled.
// Pass a seeded generator for reproducible permutations.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// WithLogger sets the logger receiving normalization diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Policy reports the resolved degenerate-row policy.
func (o Options) Policy() DegeneratePolicy { return o.policy }

// gatherOptions applies opts in order over the defaults.
// rng stays nil unless injected; random() materializes a fresh source lazily.
func gatherOptions(opts ...Option) Options {
	o := Options{
		policy: DefaultDegeneratePolicy,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// random returns the injected generator or a freshly seeded one.
func (o Options) random() *rand.Rand {
	if o.rng != nil {
		return o.rng
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
