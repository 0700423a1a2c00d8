// Package solve is the static dispatch table mapping a (day, part) pair to
// its solver function.
//
// What
//
//   - Func: a pure function from input lines to a printable result.
//   - Register: bind a Func to a (day, part) key; duplicate keys panic at
//     init time, so a conflicting table never starts running.
//   - Lookup / Run: fetch or invoke the solver for a key, failing with
//     ErrNotFound for anything unregistered.
//   - Keys: the registered pairs in (day, part) order, for listings.
//
// Why
//
//	Each day's solver lives in days/ and self-registers from an init
//	function, the same way database/sql drivers do. The table itself holds
//	no state beyond the function values and is never mutated after process
//	start, so lookups need no locking.
//
// Errors
//
//   - ErrNotFound   from Lookup/Run for an unregistered (day, part) pair.
//   - ErrInvalidKey from Register (as a panic) and Lookup for day < 1 or a
//     part other than 1 or 2.
package solve
