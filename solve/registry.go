package solve

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for registry operations.
var (
	// ErrNotFound is returned when no solver is registered for a (day, part) pair.
	ErrNotFound = errors.New("solve: no solver registered")

	// ErrInvalidKey is returned for a non-positive day or a part other than 1 or 2.
	ErrInvalidKey = errors.New("solve: invalid day/part selection")
)

// Func computes one puzzle answer from raw input lines.
// Implementations must be pure: same lines in, same result out, no global state.
type Func func(lines []string) (string, error)

// Key identifies one solver: the day of the challenge and which of its two
// parts to solve.
type Key struct {
	Day  int
	Part int
}

// String renders the key as "day D part P".
func (k Key) String() string { return fmt.Sprintf("day %d part %d", k.Day, k.Part) }

// validate reports ErrInvalidKey for keys outside the day ≥ 1, part ∈ {1,2} domain.
func (k Key) validate() error {
	if k.Day < 1 || (k.Part != 1 && k.Part != 2) {
		return fmt.Errorf("%w: %s", ErrInvalidKey, k)
	}

	return nil
}

// registry is populated by Register calls from init functions and read-only
// afterwards; one invocation per process run means no locking is needed.
var registry = make(map[Key]Func)

// Register binds fn to (day, part). It is meant to be called from an init
// function in the days package and panics on an invalid key, a nil fn, or a
// duplicate registration — a broken table should never reach Run.
func Register(day, part int, fn Func) {
	k := Key{Day: day, Part: part}
	if err := k.validate(); err != nil {
		panic(err)
	}
	if fn == nil {
		panic(fmt.Errorf("%w: nil solver for %s", ErrInvalidKey, k))
	}
	if _, dup := registry[k]; dup {
		panic(fmt.Errorf("solve: duplicate registration for %s", k))
	}
	registry[k] = fn
}

// Lookup returns the solver bound to (day, part).
// Returns ErrInvalidKey for out-of-domain selections and ErrNotFound for
// valid selections nothing is registered under.
func Lookup(day, part int) (Func, error) {
	k := Key{Day: day, Part: part}
	if err := k.validate(); err != nil {
		return nil, err
	}
	fn, ok := registry[k]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNotFound, k)
	}

	return fn, nil
}

// Run looks up and invokes the solver for (day, part) on lines.
func Run(day, part int, lines []string) (string, error) {
	fn, err := Lookup(day, part)
	if err != nil {
		return "", err
	}

	return fn(lines)
}

// Keys returns the registered (day, part) pairs sorted by day, then part.
func Keys() []Key {
	out := make([]Key, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Part < out[j].Part
	})

	return out
}
