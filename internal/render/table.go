// Package render turns filtered views and statistics into terminal tables,
// markdown reports, and PNG charts. It has no computation of its own.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/22kromerky/agdash/internal/engine"
)

// NA marks an absent metric in tables and reports.
const NA = "N/A"

// DataTable writes the view's rows as a terminal table: one Year column plus
// one column per series. Missing cells render as N/A.
func DataTable(w io.Writer, v *engine.View) {
	series := v.Series()
	header := append([]string{"Year"}, series...)

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for _, row := range v.Rows() {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row.Year))
		for _, s := range series {
			cell := row.Values[s]
			if cell.Valid {
				rec = append(rec, fmt.Sprintf("%.2f", cell.Float))
			} else {
				rec = append(rec, NA)
			}
		}
		table.Append(rec)
	}
	table.Render()
}

// StatsTable writes per-series statistics, followed by the pairwise
// correlation when present.
func StatsTable(w io.Writer, stats []engine.SeriesStats, corr *engine.PairCorrelation) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Latest", "Year", "Average", "Min", "Max", "Volatility", "Growth %"})
	for _, st := range stats {
		table.Append([]string{
			st.Series,
			fmtFloat(st.LatestValue, 2),
			fmtYear(st.LatestYear),
			fmtFloat(st.Average, 2),
			fmtFloat(st.Min, 2),
			fmtFloat(st.Max, 2),
			fmtFloat(st.Volatility, 2),
			fmtFloat(st.GrowthRate, 1),
		})
	}
	table.Render()

	if corr != nil {
		if corr.R != nil {
			fmt.Fprintf(w, "Correlation %s ~ %s: r=%.3f\n", corr.A, corr.B, *corr.R)
		} else {
			fmt.Fprintf(w, "Correlation %s ~ %s: %s (fewer than 2 overlapping points)\n", corr.A, corr.B, NA)
		}
	}
}

// Section prints a colored section header, spk2_db style.
func Section(format string, args ...interface{}) {
	color.Yellow("\n"+format, args...)
}

func fmtFloat(f *float64, prec int) string {
	if f == nil {
		return NA
	}
	return strconv.FormatFloat(*f, 'f', prec, 64)
}

func fmtYear(y *int) string {
	if y == nil {
		return NA
	}
	return strconv.Itoa(*y)
}
