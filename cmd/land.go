package cmd

import (
	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/dataset"
)

var landFlags viewFlags

var landCmd = &cobra.Command{
	Use:   "land",
	Short: "Cropland values ($/acre, KY/IN/OH/TN, 1997-2025)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatasetView(dataset.IDLand, &landFlags)
	},
}

func init() {
	rootCmd.AddCommand(landCmd)
	addViewFlags(landCmd, &landFlags, true, "states to display: KENTUCKY, INDIANA, OHIO, TENNESSEE (default all)")
}
