package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/render"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the loaded datasets, their series, and year spans",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		render.Section("Datasets")
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Name", "Series", "Years", "Rows"})
		for _, id := range store.IDs() {
			t, err := store.Table(id)
			if err != nil {
				return err
			}
			span := "-"
			if min, max, ok := t.YearSpan(); ok {
				span = strconv.Itoa(min) + "-" + strconv.Itoa(max)
			}
			table.Append([]string{
				id,
				t.Name(),
				strings.Join(t.Series(), ", "),
				span,
				strconv.Itoa(t.Len()),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
