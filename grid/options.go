package grid

import (
	"errors"
	"fmt"
)

// ErrBadConnectivity is returned when a connectivity other than Conn4 or
// Conn8 is supplied.
var ErrBadConnectivity = errors.New("grid: invalid connectivity")

// Connectivity selects which adjacent cells count as neighbors.
type Connectivity int

const (
	// Conn4 examines the four cardinal neighbors only.
	Conn4 Connectivity = iota
	// Conn8 examines all eight neighbors, diagonals included.
	Conn8
)

// NeighborOption configures MatchingNeighbors via functional arguments.
// An invalid option is recorded internally and surfaced as an error when
// the cache is built.
type NeighborOption func(*NeighborOptions)

// NeighborOptions holds parameters customizing the neighbor cache.
type NeighborOptions struct {
	// Conn selects 4- or 8-connectivity.
	Conn Connectivity

	// internal error recorded during option parsing
	err error
}

// DefaultNeighborOptions returns NeighborOptions with sane defaults:
// full 8-connectivity, so diagonal relations are available to callers
// that need them.
func DefaultNeighborOptions() NeighborOptions {
	return NeighborOptions{Conn: Conn8}
}

// WithConnectivity restricts or widens the set of examined neighbors.
// Values other than Conn4 and Conn8 yield ErrBadConnectivity.
func WithConnectivity(c Connectivity) NeighborOption {
	return func(o *NeighborOptions) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: %d", ErrBadConnectivity, c)
			return
		}
		o.Conn = c
	}
}

// buildNeighborOptions folds opts over the defaults, reporting the first
// recorded violation.
func buildNeighborOptions(opts []NeighborOption) (NeighborOptions, error) {
	o := DefaultNeighborOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return NeighborOptions{}, o.err
	}

	return o, nil
}

// directions returns the directions examined under the selected connectivity.
func (o NeighborOptions) directions() []Direction {
	if o.Conn == Conn4 {
		c := Cardinals()
		return c[:]
	}

	all := make([]Direction, 0, numDirections)
	for d := Direction(0); d < numDirections; d++ {
		all = append(all, d)
	}

	return all
}
