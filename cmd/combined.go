package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/dataset"
	"github.com/22kromerky/agdash/internal/engine"
	"github.com/22kromerky/agdash/internal/render"
)

var combinedFlags viewFlags

var combinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Combined view: crop prices, price index, and average cropland value",
	Long: `Joins all three datasets by year over a common range (default
1997-2025), with per-series statistics and the corn price vs price index
correlation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		prices, err := store.Table(dataset.IDPrices)
		if err != nil {
			return err
		}
		land, err := store.Table(dataset.IDLand)
		if err != nil {
			return err
		}
		index, err := store.Table(dataset.IDIndex)
		if err != nil {
			return err
		}
		combined, err := dataset.Combine(prices, land, index)
		if err != nil {
			return err
		}

		f := &combinedFlags
		if f.from == 0 && f.to == 0 && f.last == 0 {
			// Default to the span all three datasets cover.
			f.from, f.to = 1997, 2025
		}
		view, err := engine.Filter(combined, f.selection(combined))
		if err != nil {
			return err
		}
		start, end, ok := view.YearSpan()
		if !ok {
			fmt.Println("Insufficient data overlap for the selected range. Try a range between 1997-2025.")
			return nil
		}
		stats, _, err := engine.Summarize(view)
		if err != nil {
			return err
		}
		cornIndex, err := engine.Correlation(view, "CORN", dataset.IndexSeries)
		if err != nil {
			return err
		}
		corr := &engine.PairCorrelation{A: "CORN", B: dataset.IndexSeries, R: cornIndex}

		rep := &render.Report{
			Dataset:   "Combined",
			StartYear: start,
			EndYear:   end,
			View:      view,
			Stats:     stats,
			Corr:      corr,
		}
		return renderAndPersist("combined", rep, f, "Combined Agricultural Data", "Comparative Analysis")
	},
}

func init() {
	rootCmd.AddCommand(combinedCmd)
	addViewFlags(combinedCmd, &combinedFlags, false, "")
}
