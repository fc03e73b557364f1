package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/tyler180/pfr-gamelog/internal/pfr"
)

func init() {
	rootCmd.AddCommand(teamsCmd)
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List the team names the scraper accepts.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Team", "Path", "City"})
		ref := pfr.DefaultReference()
		for _, name := range ref.TeamNames() {
			path, _ := ref.TeamPath(name)
			city, _ := ref.TeamCity(name)
			t.AppendRow(table.Row{name, path, city})
		}
		t.Render()
	},
}
