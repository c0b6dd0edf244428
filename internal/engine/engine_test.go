package engine

import (
	"testing"

	"github.com/22kromerky/agdash/internal/dataset"
)

// wheatTable builds a single-series table spanning 1975-2025 with value
// float64(year-1975) for every year.
func wheatTable(t *testing.T) *dataset.Table {
	t.Helper()
	b, err := dataset.NewBuilder("test", "WHEAT")
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	for y := 1975; y <= 2025; y++ {
		if err := b.Set(y, "WHEAT", dataset.Some(float64(y-1975))); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	return b.Build()
}

func TestFilterRange(t *testing.T) {
	tbl := wheatTable(t)
	v, err := Filter(tbl, Selection{StartYear: 2015, EndYear: 2020})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if v.Len() != 6 {
		t.Fatalf("expected 6 rows, got %d", v.Len())
	}
	years := v.Years()
	for i, y := range years {
		if y < 2015 || y > 2020 {
			t.Errorf("year %d outside range", y)
		}
		if i > 0 && years[i-1] >= y {
			t.Errorf("years not strictly ascending at %d", i)
		}
	}
	st, err := Stats(v, "WHEAT")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.LatestYear == nil || *st.LatestYear != 2020 {
		t.Errorf("latest year = %v, want 2020", st.LatestYear)
	}
}

func TestFilterClampsSilently(t *testing.T) {
	tbl := wheatTable(t)
	v, err := Filter(tbl, Selection{StartYear: 1900, EndYear: 2100})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if v.Len() != tbl.Len() {
		t.Fatalf("clamped filter kept %d rows, want %d", v.Len(), tbl.Len())
	}
	min, max, _ := v.YearSpan()
	if min != 1975 || max != 2025 {
		t.Errorf("span = %d-%d, want 1975-2025", min, max)
	}
}

func TestFilterOpenEndedRange(t *testing.T) {
	tbl := wheatTable(t)
	cases := []struct {
		name     string
		sel      Selection
		min, max int
	}{
		{"start only", Selection{StartYear: 1990}, 1990, 2025},
		{"end only", Selection{EndYear: 1990}, 1975, 1990},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			norm, err := tc.sel.Normalize(tbl)
			if err != nil {
				t.Fatalf("Normalize: %v", err)
			}
			if norm.StartYear != tc.min || norm.EndYear != tc.max {
				t.Errorf("normalized range = %d-%d, want %d-%d",
					norm.StartYear, norm.EndYear, tc.min, tc.max)
			}
			v, err := Filter(tbl, tc.sel)
			if err != nil {
				t.Fatalf("Filter: %v", err)
			}
			min, max, _ := v.YearSpan()
			if min != tc.min || max != tc.max {
				t.Errorf("view span = %d-%d, want %d-%d", min, max, tc.min, tc.max)
			}
		})
	}
}

func TestFilterReversedRange(t *testing.T) {
	tbl := wheatTable(t)
	v, err := Filter(tbl, Selection{StartYear: 2020, EndYear: 2015})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if v.Len() != 6 {
		t.Fatalf("reversed range kept %d rows, want 6", v.Len())
	}
}

func TestFilterIdempotent(t *testing.T) {
	tbl := wheatTable(t)
	sel := Selection{StartYear: 2000, EndYear: 2010}
	once, err := Filter(tbl, sel)
	if err != nil {
		t.Fatalf("first filter: %v", err)
	}
	twice, err := Filter(once, sel)
	if err != nil {
		t.Fatalf("second filter: %v", err)
	}
	if once.Len() != twice.Len() {
		t.Fatalf("re-filter changed row count: %d vs %d", once.Len(), twice.Len())
	}
	y1, y2 := once.Years(), twice.Years()
	for i := range y1 {
		if y1[i] != y2[i] {
			t.Fatalf("re-filter changed year at %d: %d vs %d", i, y1[i], y2[i])
		}
	}
}

func TestFilterEmptyIntersection(t *testing.T) {
	b, err := dataset.NewBuilder("test", "A")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Set(2000, "A", dataset.Some(1)); err != nil {
		t.Fatal(err)
	}
	if err := b.Set(2010, "A", dataset.Some(2)); err != nil {
		t.Fatal(err)
	}
	tbl := b.Build()

	// Years inside the span but with no rows between them.
	v, err := Filter(tbl, Selection{StartYear: 2002, EndYear: 2008})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if v.Len() != 0 {
		t.Fatalf("expected empty view, got %d rows", v.Len())
	}
}

func TestFilterUnknownSeries(t *testing.T) {
	tbl := wheatTable(t)
	if _, err := Filter(tbl, Selection{Series: []string{"BARLEY"}}); err == nil {
		t.Fatal("expected error for unknown series")
	}
}

func TestFilterSeriesSubset(t *testing.T) {
	b, err := dataset.NewBuilder("test", "CORN", "WHEAT", "SOYBEANS")
	if err != nil {
		t.Fatal(err)
	}
	for y := 2000; y <= 2005; y++ {
		for _, s := range []string{"CORN", "WHEAT", "SOYBEANS"} {
			if err := b.Set(y, s, dataset.Some(1)); err != nil {
				t.Fatal(err)
			}
		}
	}
	v, err := Filter(b.Build(), Selection{Series: []string{"CORN", "WHEAT"}})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if got := v.Series(); len(got) != 2 || got[0] != "CORN" || got[1] != "WHEAT" {
		t.Fatalf("series = %v, want [CORN WHEAT]", got)
	}
	if v.HasSeries("SOYBEANS") {
		t.Error("SOYBEANS should not be in the view")
	}
	for _, row := range v.Rows() {
		if _, ok := row.Values["SOYBEANS"]; ok {
			t.Fatal("row carries unselected series")
		}
	}
}
