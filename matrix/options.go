// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors.
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - gatherOptions, the single place options are resolved.
//
// The only policy today is numeric ingestion: whether constructors accept
// NaN and ±Inf. The default accepts any float64 so that construction fails
// only on nil, empty or ragged grids.
package matrix

// DefaultValidateNaNInf toggles finite-only validation on ingestion.
const DefaultValidateNaNInf = false

// DefaultEpsilon is the tolerance suggested for IsSymmetricWithin and AllClose
// when callers have no domain-specific value.
const DefaultEpsilon = 1e-9

// Option mutates constructor options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	validateNaNInf bool // reject NaN/±Inf on ingestion
}

// WithFiniteOnly rejects NaN and ±Inf in constructor input with ErrNaNInf.
// The policy is carried by the constructed matrix: Map results must stay finite too.
func WithFiniteOnly() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithAllowNaNInf accepts any float64 on ingestion (the default).
func WithAllowNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves option setters against the documented defaults.
// Exposed mostly for tests and diagnostics.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// FiniteOnly reports whether the finite-only ingestion policy is active.
func (o Options) FiniteOnly() bool { return o.validateNaNInf }

// gatherOptions applies setters in order on top of defaults (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
