package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/solve"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered solvers",
	Long: `List every (day, part) pair a solver is registered for, together
with the input file the solver reads by default.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header("Day", "Part", "Default input")
	for _, k := range solve.Keys() {
		if err := table.Append([]string{strconv.Itoa(k.Day), strconv.Itoa(k.Part), input.DefaultPath(k.Day)}); err != nil {
			return err
		}
	}

	return table.Render()
}
