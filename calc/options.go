// SPDX-License-Identifier: MIT

package calc

import (
	"io"

	"github.com/katalvlaran/linalg/matrix"
)

// DefaultPrompt is printed before each line in interactive mode.
const DefaultPrompt = "> "

// Option configures a Session.
type Option func(*Session)

// WithEpsilon overrides the numeric tolerance for every kernel call and for
// the singular-determinant note. Panics like matrix.WithEpsilon on NaN, ±Inf
// or negative values.
func WithEpsilon(eps float64) Option {
	set := matrix.WithEpsilon(eps)

	return func(s *Session) {
		s.eps = eps
		s.kernelOpts = append(s.kernelOpts, set)
	}
}

// WithMaxIterations overrides the eigenvalue iteration cap.
// Panics if n <= 0.
func WithMaxIterations(n int) Option {
	set := matrix.WithMaxIterations(n)

	return func(s *Session) { s.kernelOpts = append(s.kernelOpts, set) }
}

// WithErrorOutput sends "error: ..." lines to w instead of the main output.
func WithErrorOutput(w io.Writer) Option {
	return func(s *Session) { s.errOut = w }
}

// WithPrompt sets the interactive prompt.
func WithPrompt(p string) Option {
	return func(s *Session) { s.prompt = p }
}
