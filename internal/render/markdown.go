package render

import (
	"fmt"
	"strings"

	"github.com/22kromerky/agdash/internal/engine"
)

// Report is a markdown-friendly summary of one filtered view.
type Report struct {
	Dataset   string
	StartYear int
	EndYear   int
	View      *engine.View
	Stats     []engine.SeriesStats
	Corr      *engine.PairCorrelation
}

// Markdown renders a compact report suitable for saving or piping elsewhere.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Dataset: %s\n", r.Dataset))
	b.WriteString(fmt.Sprintf("Range: %d-%d\n", r.StartYear, r.EndYear))
	b.WriteString(fmt.Sprintf("Series: %s\n", strings.Join(r.View.Series(), ", ")))
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.View.Len()))

	b.WriteString("\n[STATISTICS]\n")
	for _, st := range r.Stats {
		b.WriteString(fmt.Sprintf("- %s: ", st.Series))
		if st.Count == 0 {
			b.WriteString("no data in range\n")
			continue
		}
		b.WriteString(fmt.Sprintf("latest %s (%s), mean %s, min %s, max %s, std %s, growth %s%%\n",
			fmtFloat(st.LatestValue, 2), fmtYear(st.LatestYear),
			fmtFloat(st.Average, 2), fmtFloat(st.Min, 2), fmtFloat(st.Max, 2),
			fmtFloat(st.Volatility, 2), fmtFloat(st.GrowthRate, 1)))
	}

	if r.Corr != nil {
		b.WriteString("\n[CORRELATION]\n")
		if r.Corr.R != nil {
			b.WriteString(fmt.Sprintf("- %s ~ %s: r=%.3f\n", r.Corr.A, r.Corr.B, *r.Corr.R))
		} else {
			b.WriteString(fmt.Sprintf("- %s ~ %s: %s\n", r.Corr.A, r.Corr.B, NA))
		}
	}

	if r.View.Len() > 0 {
		b.WriteString("\n[DATA]\n")
		series := r.View.Series()
		b.WriteString("| Year | ")
		b.WriteString(strings.Join(series, " | "))
		b.WriteString(" |\n|")
		for i := 0; i < len(series)+1; i++ {
			b.WriteString(" --- |")
		}
		b.WriteString("\n")
		for _, row := range r.View.Rows() {
			b.WriteString(fmt.Sprintf("| %d |", row.Year))
			for _, s := range series {
				cell := row.Values[s]
				if cell.Valid {
					b.WriteString(fmt.Sprintf(" %.2f |", cell.Float))
				} else {
					b.WriteString(" " + NA + " |")
				}
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
