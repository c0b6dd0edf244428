package engine

import (
	"fmt"
	"math"
)

// SeriesStats are the descriptive statistics for one series over a filtered
// view. Optional metrics are nil when undefined (empty or all-missing range,
// zero first value for growth) — "no data" is a result state, not an error.
type SeriesStats struct {
	Series string
	Count  int // non-missing observations in range

	LatestValue *float64
	LatestYear  *int
	Average     *float64
	Min         *float64
	Max         *float64
	// Volatility is the sample standard deviation (n-1 denominator).
	Volatility *float64
	// GrowthRate is the percent change from the first to the last
	// non-missing value in range.
	GrowthRate *float64
}

// PairCorrelation is the Pearson correlation between two series over their
// overlapping non-missing years. R is nil with fewer than 2 such years or
// zero variance on either side.
type PairCorrelation struct {
	A, B string
	R    *float64
}

// Stats computes descriptive statistics for one series of a view. An unknown
// series name is a programming error and is rejected; everything user-driven
// (empty range, all-missing data) degrades to absent metrics.
func Stats(v *View, series string) (SeriesStats, error) {
	if !v.HasSeries(series) {
		return SeriesStats{}, fmt.Errorf("unknown series %q", series)
	}
	out := SeriesStats{Series: series}

	// Welford accumulation for mean/variance.
	var (
		n        int
		mean, m2 float64
		min      = math.Inf(1)
		max      = math.Inf(-1)
		first    float64
		last     float64
		lastYear int
	)
	for _, row := range v.rows {
		cell := row.Values[series]
		if !cell.Valid {
			continue
		}
		x := cell.Float
		if n == 0 {
			first = x
		}
		last = x
		lastYear = row.Year
		n++
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
		delta := x - mean
		mean += delta / float64(n)
		m2 += delta * (x - mean)
	}
	out.Count = n
	if n == 0 {
		return out, nil
	}

	out.LatestValue = ptr(last)
	out.LatestYear = &lastYear
	out.Average = ptr(mean)
	out.Min = ptr(min)
	out.Max = ptr(max)
	if n > 1 {
		out.Volatility = ptr(math.Sqrt(m2 / float64(n-1)))
		if first != 0 {
			out.GrowthRate = ptr((last - first) / first * 100)
		}
	}
	return out, nil
}

// Correlation computes the Pearson correlation coefficient between two series
// over the years where both have values. The result is clamped to [-1, 1];
// nil means not available.
func Correlation(v *View, a, b string) (*float64, error) {
	if !v.HasSeries(a) {
		return nil, fmt.Errorf("unknown series %q", a)
	}
	if !v.HasSeries(b) {
		return nil, fmt.Errorf("unknown series %q", b)
	}

	var n, sumX, sumY, sumXX, sumYY, sumXY float64
	for _, row := range v.rows {
		ca, cb := row.Values[a], row.Values[b]
		if !ca.Valid || !cb.Valid {
			continue
		}
		x, y := ca.Float, cb.Float
		n++
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	if n < 2 {
		return nil, nil
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return nil, nil
	}
	r := (n*sumXY - sumX*sumY) / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, nil
	}
	return ptr(r), nil
}

// Summarize computes statistics for every series in the view, plus the
// pairwise correlation when the view compares exactly two series.
func Summarize(v *View) ([]SeriesStats, *PairCorrelation, error) {
	stats := make([]SeriesStats, 0, len(v.series))
	for _, s := range v.series {
		st, err := Stats(v, s)
		if err != nil {
			return nil, nil, err
		}
		stats = append(stats, st)
	}
	if len(v.series) != 2 {
		return stats, nil, nil
	}
	r, err := Correlation(v, v.series[0], v.series[1])
	if err != nil {
		return nil, nil, err
	}
	return stats, &PairCorrelation{A: v.series[0], B: v.series[1], R: r}, nil
}

func ptr(f float64) *float64 { return &f }
