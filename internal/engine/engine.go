// Package engine is the filtering and statistics core behind every dashboard
// view. It is stateless: each call depends only on its inputs, and the tables
// it reads are immutable, so concurrent use needs no locking.
package engine

import (
	"fmt"

	"github.com/22kromerky/agdash/internal/dataset"
)

// Source is any year-ordered table the engine can filter: a dataset.Table or
// an already-filtered View.
type Source interface {
	Rows() []dataset.Row
	Series() []string
	HasSeries(name string) bool
	YearSpan() (min, max int, ok bool)
}

// Selection is the user's intent: which series to show and over which years.
// A zero StartYear/EndYear pair means the full span; an empty Series slice
// means every column.
type Selection struct {
	Series    []string
	StartYear int
	EndYear   int
}

// Normalize resolves a selection against a source: empty series default to
// all columns, the year range is clamped to the source's span, and a
// reversed range is swapped. Unknown series names are a contract violation
// and return an error.
func (sel Selection) Normalize(src Source) (Selection, error) {
	out := Selection{StartYear: sel.StartYear, EndYear: sel.EndYear}
	if len(sel.Series) == 0 {
		out.Series = src.Series()
	} else {
		out.Series = append([]string(nil), sel.Series...)
		for _, s := range out.Series {
			if !src.HasSeries(s) {
				return Selection{}, fmt.Errorf("unknown series %q", s)
			}
		}
	}
	min, max, ok := src.YearSpan()
	if !ok {
		// Empty source: nothing to clamp against.
		return out, nil
	}
	// Zero sentinels resolve independently: --from without --to means
	// "through the dataset maximum", and vice versa.
	if out.StartYear == 0 {
		out.StartYear = min
	}
	if out.EndYear == 0 {
		out.EndYear = max
	}
	if out.StartYear > out.EndYear {
		out.StartYear, out.EndYear = out.EndYear, out.StartYear
	}
	if out.StartYear < min {
		out.StartYear = min
	}
	if out.EndYear > max {
		out.EndYear = max
	}
	return out, nil
}

// View is a filtered slice of a table: the rows inside the selection's year
// range, restricted to the selected series. A View is itself a Source, so
// filtering is composable and idempotent.
type View struct {
	series []string
	rows   []dataset.Row
}

// Filter returns the subsequence of src's rows whose year falls inside the
// selection's (clamped) range, restricted to the selected series. Ranges
// outside the source's span clamp silently; an empty intersection yields an
// empty view, never an error.
func Filter(src Source, sel Selection) (*View, error) {
	norm, err := sel.Normalize(src)
	if err != nil {
		return nil, err
	}
	v := &View{series: norm.Series}
	for _, row := range src.Rows() {
		if row.Year < norm.StartYear || row.Year > norm.EndYear {
			continue
		}
		vals := make(map[string]dataset.Value, len(norm.Series))
		for _, s := range norm.Series {
			vals[s] = row.Values[s]
		}
		v.rows = append(v.rows, dataset.Row{Year: row.Year, Values: vals})
	}
	return v, nil
}

// Len returns the number of rows in the view.
func (v *View) Len() int { return len(v.rows) }

// Rows returns the view's rows in ascending year order.
func (v *View) Rows() []dataset.Row { return v.rows }

// Series returns the selected series names.
func (v *View) Series() []string {
	out := make([]string, len(v.series))
	copy(out, v.series)
	return out
}

// HasSeries reports whether the view carries the named series.
func (v *View) HasSeries(name string) bool {
	for _, s := range v.series {
		if s == name {
			return true
		}
	}
	return false
}

// YearSpan returns the view's minimum and maximum year.
func (v *View) YearSpan() (min, max int, ok bool) {
	if len(v.rows) == 0 {
		return 0, 0, false
	}
	return v.rows[0].Year, v.rows[len(v.rows)-1].Year, true
}

// Years returns the ascending years present in the view.
func (v *View) Years() []int {
	out := make([]int, len(v.rows))
	for i, r := range v.rows {
		out[i] = r.Year
	}
	return out
}
