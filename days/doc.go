// Package days holds one self-contained solver per puzzle day.
//
// Each file registers its two parts with the solve registry from an init
// function, so importing this package (usually blank, from the CLI) is all
// it takes to make a day runnable. Solvers are pure: they parse the given
// lines, call into the utility packages, and return a printable answer.
package days
