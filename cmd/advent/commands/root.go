package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/solve"
)

var version string

var banner = color.New(color.FgCyan)

// rootCmd represents the base command: running one solver directly.
var rootCmd = &cobra.Command{
	Use:   "advent <day> <part> [input-path]",
	Short: "Advent - daily puzzle solver runner",
	Long: `Advent runs the solver for one puzzle day and part against a text
input file and prints the computed answer.

When no input path is given, the file is read from the conventional
location inputs/input<day>.txt relative to the working directory.`,
	Args:          cobra.RangeArgs(2, 3),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSolver,
}

// Execute runs the root command. Called once from main.main().
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(v string) {
	version = v
	rootCmd.Version = version
}

// parseDay validates the day argument: any positive integer.
func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 {
		return 0, fmt.Errorf("day must be a positive integer, got %q", arg)
	}

	return day, nil
}

// parsePart validates the part argument: 1 or 2.
func parsePart(arg string) (int, error) {
	part, err := strconv.Atoi(arg)
	if err != nil || (part != 1 && part != 2) {
		return 0, fmt.Errorf("part must be 1 or 2, got %q", arg)
	}

	return part, nil
}

func runSolver(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	part, err := parsePart(args[1])
	if err != nil {
		return err
	}

	explicit := ""
	if len(args) == 3 {
		explicit = args[2]
	}
	path := input.Resolve(day, explicit)

	banner.Fprintf(cmd.OutOrStdout(), "Running part %d of day %d using input %s.\n\n", part, day, path)

	lines, err := input.ReadLines(path)
	if err != nil {
		return err
	}

	result, err := solve.Run(day, part, lines)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), result)

	return nil
}
