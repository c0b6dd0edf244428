package cmd

import (
	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/dataset"
)

var pricesFlags viewFlags

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "National crop prices ($/bushel, 1975-2025)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDatasetView(dataset.IDPrices, &pricesFlags)
	},
}

func init() {
	rootCmd.AddCommand(pricesCmd)
	addViewFlags(pricesCmd, &pricesFlags, true, "crops to display: CORN, SOYBEANS, WHEAT (default all)")
}
