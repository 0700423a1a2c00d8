// Package search defines tunable options for the breadth-first helpers.
package search

import (
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("search: invalid option supplied")

// Option configures search behavior via functional arguments.
// An invalid Option (e.g. a negative depth) is recorded internally and
// surfaced as ErrOptionViolation when the helper is invoked.
type Option func(*Options)

// Options holds parameters customizing the breadth-first helpers.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many edges from the
	// source. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{MaxDepth: 0}
}

// WithMaxDepth stops the search at the given depth (in edges from the source).
//
//	d > 0: explore no further than depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// buildOptions folds opts over the defaults, reporting the first
// recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// withinLimit reports whether a vertex at depth d may still be explored.
func (o Options) withinLimit(d int) bool {
	return o.MaxDepth == 0 || d <= o.MaxDepth
}
