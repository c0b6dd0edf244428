package cmd

import (
	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/dataset"
)

var indexFlags viewFlags

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "National price received index (2011 = 100, 1990-2025)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatasetView(dataset.IDIndex, &indexFlags)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	addViewFlags(indexCmd, &indexFlags, false, "")
}
