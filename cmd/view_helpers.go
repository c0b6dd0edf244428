package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/22kromerky/agdash/internal/dataset"
	"github.com/22kromerky/agdash/internal/engine"
	"github.com/22kromerky/agdash/internal/render"
	"github.com/22kromerky/agdash/internal/report"
)

// viewFlags are the flags shared by the dataset view commands.
type viewFlags struct {
	from    int
	to      int
	last    int
	series  []string
	noStats bool
	chart   string
	output  string
	format  string
	save    bool
}

func addViewFlags(cmd *cobra.Command, f *viewFlags, withSeries bool, seriesHelp string) {
	cmd.Flags().IntVar(&f.from, "from", 0, "start year (0 = dataset minimum)")
	cmd.Flags().IntVar(&f.to, "to", 0, "end year (0 = dataset maximum)")
	cmd.Flags().IntVar(&f.last, "last", 0, "show only the last N years (overrides --from/--to)")
	if withSeries {
		cmd.Flags().StringSliceVar(&f.series, "series", nil, seriesHelp)
	}
	cmd.Flags().BoolVar(&f.noStats, "no-stats", false, "skip the summary statistics table")
	cmd.Flags().StringVar(&f.chart, "chart", "", "write a PNG line chart to this path")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write a markdown report to this path")
	cmd.Flags().StringVar(&f.format, "format", "", "terminal output format: table | markdown")
	cmd.Flags().BoolVar(&f.save, "save", false, "save a report snapshot under the reports dir")
}

// selection resolves the zoom flags against the table's span. --last wins
// over an explicit range, matching the dashboard's zoom presets.
func (f *viewFlags) selection(t *dataset.Table) engine.Selection {
	sel := engine.Selection{StartYear: f.from, EndYear: f.to}
	for _, s := range f.series {
		sel.Series = append(sel.Series, strings.ToUpper(strings.TrimSpace(s)))
	}
	if f.last > 0 {
		if _, max, ok := t.YearSpan(); ok {
			sel.StartYear = max - f.last + 1
			sel.EndYear = max
		}
	}
	return sel
}

// runDatasetView is the shared body of the prices/land/index commands:
// filter, summarize, render.
func runDatasetView(datasetID string, f *viewFlags) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	table, err := store.Table(datasetID)
	if err != nil {
		return err
	}

	view, err := engine.Filter(table, f.selection(table))
	if err != nil {
		return err
	}
	stats, corr, err := engine.Summarize(view)
	if err != nil {
		return err
	}
	start, end, ok := view.YearSpan()
	if !ok {
		// Clamped range still produced no rows; report it, don't fail.
		fmt.Printf("No %s data in the selected range.\n", table.Name())
		return nil
	}

	rep := &render.Report{
		Dataset:   table.Name(),
		StartYear: start,
		EndYear:   end,
		View:      view,
		Stats:     stats,
		Corr:      corr,
	}
	return renderAndPersist(datasetID, rep, f, table.Name(), "Summary Statistics")
}

// renderAndPersist is the shared tail of every view command: terminal
// output in the requested format, then the --chart, --output, and --save
// side effects.
func renderAndPersist(datasetID string, rep *render.Report, f *viewFlags, heading, statsHeading string) error {
	format := f.format
	if format == "" && cfg != nil {
		format = cfg.DefaultFormat
	}
	switch format {
	case "", "table":
		render.Section("%s (%d-%d)", heading, rep.StartYear, rep.EndYear)
		render.DataTable(os.Stdout, rep.View)
		if !f.noStats {
			render.Section("%s (%d-%d)", statsHeading, rep.StartYear, rep.EndYear)
			render.StatsTable(os.Stdout, rep.Stats, rep.Corr)
		}
	case "markdown":
		fmt.Println(rep.Markdown())
	default:
		return fmt.Errorf("unsupported --format: %s (use table or markdown)", format)
	}

	var chartPNG []byte
	if f.chart != "" || f.save {
		var err error
		chartPNG, err = render.LineChart(rep.View, fmt.Sprintf("%s (%d-%d)", heading, rep.StartYear, rep.EndYear), cfg.ChartWidth, cfg.ChartHeight)
		if err != nil {
			return err
		}
	}
	if f.chart != "" {
		if err := os.WriteFile(f.chart, chartPNG, 0o644); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		fmt.Printf("✓ Wrote chart to %s\n", f.chart)
	}
	if f.output != "" {
		if err := os.WriteFile(f.output, []byte(rep.Markdown()), 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Wrote report to %s\n", f.output)
	}
	if f.save {
		dir := report.NewDir(cfg.ReportsDir)
		snap, err := dir.Save(datasetID, rep.View.Series(), rep.StartYear, rep.EndYear, rep.Markdown(), chartPNG)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Saved snapshot %s under %s\n", snap.ID, dir.Path())
	}
	return nil
}
