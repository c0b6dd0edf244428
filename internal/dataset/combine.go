package dataset

// LandAvgSeries is the per-year average cropland value across the four
// states in the combined table.
const LandAvgSeries = "LAND AVG"

// Combine joins the three dashboard tables into one table keyed by year:
// the crop price series, the price index, and the average cropland value
// across states. Years present in any input appear in the result; a year a
// table doesn't cover is simply missing for that table's series.
func Combine(prices, land, index *Table) (*Table, error) {
	series := append(append([]string(nil), prices.Series()...), IndexSeries, LandAvgSeries)
	b, err := NewBuilder("Combined", series...)
	if err != nil {
		return nil, err
	}

	years := make(map[int]bool)
	for _, t := range []*Table{prices, land, index} {
		for _, y := range t.Years() {
			years[y] = true
		}
	}

	for y := range years {
		for _, s := range prices.Series() {
			if err := b.Set(y, s, prices.Value(y, s)); err != nil {
				return nil, err
			}
		}
		if err := b.Set(y, IndexSeries, index.Value(y, IndexSeries)); err != nil {
			return nil, err
		}
		if err := b.Set(y, LandAvgSeries, landAverage(land, y)); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// landAverage is the mean cropland value across states for one year,
// missing when no state has an observation.
func landAverage(land *Table, year int) Value {
	var sum float64
	var n int
	for _, s := range land.Series() {
		cell := land.Value(year, s)
		if cell.Valid {
			sum += cell.Float
			n++
		}
	}
	if n == 0 {
		return None()
	}
	return Some(sum / float64(n))
}
