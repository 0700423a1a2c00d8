package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/advent/cmd/advent/commands"

	// Register every day's solvers with the dispatch table.
	_ "github.com/katalvlaran/advent/days"
)

// Version information - set during build
var version = "dev"

func main() {
	commands.SetVersionInfo(version)

	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
