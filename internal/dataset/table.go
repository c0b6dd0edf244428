// Package dataset holds the immutable year-indexed tables the dashboard
// operates on, plus the CSV loaders that build them from USDA exports.
package dataset

import (
	"fmt"
	"sort"
)

// Value is an optional numeric cell. Missing cells are represented
// explicitly rather than with a zero sentinel.
type Value struct {
	Float float64
	Valid bool
}

// Some returns a present value.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// None returns a missing value.
func None() Value { return Value{} }

// String satisfies fmt.Stringer for debug output.
func (v Value) String() string {
	if !v.Valid {
		return "missing"
	}
	return fmt.Sprintf("%g", v.Float)
}

// Row is one year of observations across the table's series.
type Row struct {
	Year   int
	Values map[string]Value
}

// Table is an ordered, immutable time-series table: unique ascending years,
// one named numeric series per column. Build one with a Builder; once built
// it is read-only and safe for concurrent use.
type Table struct {
	name   string
	series []string
	rows   []Row
	index  map[string]int // series name -> position in series
}

// Name returns the dataset's display name.
func (t *Table) Name() string { return t.name }

// Series returns the column names in their declared order.
func (t *Table) Series() []string {
	out := make([]string, len(t.series))
	copy(out, t.series)
	return out
}

// HasSeries reports whether the named column exists.
func (t *Table) HasSeries(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of rows (years).
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the table rows in ascending year order. The returned slice
// must not be modified.
func (t *Table) Rows() []Row { return t.rows }

// Years returns the ascending list of years present in the table.
func (t *Table) Years() []int {
	out := make([]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Year
	}
	return out
}

// YearSpan returns the minimum and maximum year. Ok is false for an empty
// table.
func (t *Table) YearSpan() (min, max int, ok bool) {
	if len(t.rows) == 0 {
		return 0, 0, false
	}
	return t.rows[0].Year, t.rows[len(t.rows)-1].Year, true
}

// Value returns the cell for the given year and series. A year outside the
// table or a missing observation both come back as a missing Value.
func (t *Table) Value(year int, series string) Value {
	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].Year >= year })
	if i >= len(t.rows) || t.rows[i].Year != year {
		return None()
	}
	return t.rows[i].Values[series]
}

// Builder accumulates observations and produces a validated Table.
type Builder struct {
	name   string
	series []string
	index  map[string]int
	cells  map[int]map[string]Value // year -> series -> value
}

// NewBuilder creates a builder for a table with the given series columns.
func NewBuilder(name string, series ...string) (*Builder, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("dataset %q: at least one series is required", name)
	}
	idx := make(map[string]int, len(series))
	for i, s := range series {
		if s == "" {
			return nil, fmt.Errorf("dataset %q: empty series name", name)
		}
		if _, dup := idx[s]; dup {
			return nil, fmt.Errorf("dataset %q: duplicate series %q", name, s)
		}
		idx[s] = i
	}
	return &Builder{
		name:   name,
		series: append([]string(nil), series...),
		index:  idx,
		cells:  make(map[int]map[string]Value),
	}, nil
}

// Set records an observation. Setting an unknown series is an error;
// setting the same (year, series) twice keeps the last write.
func (b *Builder) Set(year int, series string, v Value) error {
	if _, ok := b.index[series]; !ok {
		return fmt.Errorf("dataset %q: unknown series %q", b.name, series)
	}
	row, ok := b.cells[year]
	if !ok {
		row = make(map[string]Value, len(b.series))
		b.cells[year] = row
	}
	row[series] = v
	return nil
}

// Build finalizes the table, sorting rows by year. Years with no
// observations at all are simply absent from the table.
func (b *Builder) Build() *Table {
	years := make([]int, 0, len(b.cells))
	for y := range b.cells {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]Row, 0, len(years))
	for _, y := range years {
		vals := make(map[string]Value, len(b.series))
		for _, s := range b.series {
			vals[s] = b.cells[y][s]
		}
		rows = append(rows, Row{Year: y, Values: vals})
	}

	idx := make(map[string]int, len(b.index))
	for k, v := range b.index {
		idx[k] = v
	}
	return &Table{
		name:   b.name,
		series: append([]string(nil), b.series...),
		rows:   rows,
		index:  idx,
	}
}
