package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/render"
	"github.com/22kromerky/agdash/internal/report"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved report snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		dir := report.NewDir(cfg.ReportsDir)
		snaps, err := dir.List()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Printf("No snapshots under %s\n", dir.Path())
			return nil
		}
		render.Section("Snapshots (%s)", dir.Path())
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Dataset", "Series", "Range", "Chart", "Created"})
		for _, s := range snaps {
			chart := "-"
			if s.ChartFile != "" {
				chart = s.ChartFile
			}
			table.Append([]string{
				s.ID,
				s.Dataset,
				strings.Join(s.Series, ", "),
				strconv.Itoa(s.StartYear) + "-" + strconv.Itoa(s.EndYear),
				chart,
				s.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
