// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and parsers, and
// the numeric policy shared by the algorithm layer. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//
// Notes:
//   - Numeric thresholds (DefaultEpsilon, NormEpsilon, HomogeneousLimit) are
//     package constants, not options: determinant, inversion and the vector
//     kernels must agree on one policy.
//   - Storage flags only apply where they make sense:
//     WithReadOnly is honored by vector constructors and ignored by Dense;
//     WithShallowCopy is honored by NewDenseFrom and NewVectorFrom.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultEpsilon is the magnitude at or below which a pivot, a determinant
	// or a homogeneous coordinate is treated as zero.
	DefaultEpsilon = 1e-30

	// NormEpsilon is the looser threshold used to detect null vectors
	// (every component within NormEpsilon of zero) in Normalize and Cosine.
	NormEpsilon = 1e-20

	// HomogeneousLimit is the largest homogeneous coordinate magnitude
	// FromHomogeneous accepts before refusing to divide by it.
	HomogeneousLimit = 1e30

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and parsing.
	DefaultValidateNaNInf = true
)

// Rendering policy.
const (
	// DefaultPrecision is the number of fractional digits used by String().
	DefaultPrecision = 3

	// MaxPrecision caps the precision accepted by Format/FormatVec.
	MaxPrecision = 17
)

// Storage policy.
const (
	// DefaultShallowCopy keeps constructors copying caller data.
	DefaultShallowCopy = false

	// DefaultReadOnly keeps vectors writable.
	DefaultReadOnly = false
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	shallowCopy    bool // DefaultShallowCopy
	readOnly       bool // DefaultReadOnly
}

// WithValidateNaNInf enables rejection of NaN/±Inf on Set and parsing.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard. Non-finite values then
// flow through arithmetic unchanged (IEEE semantics).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithShallowCopy makes NewDenseFrom / NewVectorFrom alias the caller's
// storage instead of copying it: writes through the instance are visible in
// the caller's slices and vice versa.
//
// AI-Hints:
//   - Use to expose an existing [][]float64 buffer to the algorithm layer without copying.
//   - The caller keeps ownership; do not reslice rows shorter than the declared shape.
func WithShallowCopy() Option {
	return func(o *Options) { o.shallowCopy = true }
}

// WithReadOnly marks a vector as read-only: every Set fails with ErrReadOnly,
// and so does every in-place kernel applied to it or to a view over it.
func WithReadOnly() Option {
	return func(o *Options) { o.readOnly = true }
}

// NewMatrixOptions resolves opts into an Options value (defaults first).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		shallowCopy:    DefaultShallowCopy,
		readOnly:       DefaultReadOnly,
	}
}

// gatherOptions applies user options in order over the defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// ValidateNaNInf reports whether the finite-value guard is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ShallowCopy reports whether constructors alias caller storage.
func (o Options) ShallowCopy() bool { return o.shallowCopy }

// ReadOnly reports whether vectors are constructed read-only.
func (o Options) ReadOnly() bool { return o.readOnly }
