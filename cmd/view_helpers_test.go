package cmd

import (
	"os"
	"path/filepath"
	"testing"

	cfgpkg "github.com/22kromerky/agdash/internal/config"
	"github.com/22kromerky/agdash/internal/dataset"
	"github.com/22kromerky/agdash/internal/engine"
	"github.com/22kromerky/agdash/internal/render"
	"github.com/22kromerky/agdash/internal/report"
)

func testTable(t *testing.T) *dataset.Table {
	t.Helper()
	b, err := dataset.NewBuilder("test", "CORN")
	if err != nil {
		t.Fatal(err)
	}
	for y := 2000; y <= 2025; y++ {
		if err := b.Set(y, "CORN", dataset.Some(float64(y-2000))); err != nil {
			t.Fatal(err)
		}
	}
	return b.Build()
}

func TestSelectionLastPreset(t *testing.T) {
	f := viewFlags{from: 1990, to: 2010, last: 10}
	sel := f.selection(testTable(t))
	if sel.StartYear != 2016 || sel.EndYear != 2025 {
		t.Errorf("selection = %d-%d, want 2016-2025 (--last overrides range)", sel.StartYear, sel.EndYear)
	}
}

func TestSelectionExplicitRange(t *testing.T) {
	f := viewFlags{from: 2005, to: 2015}
	sel := f.selection(testTable(t))
	if sel.StartYear != 2005 || sel.EndYear != 2015 {
		t.Errorf("selection = %d-%d, want 2005-2015", sel.StartYear, sel.EndYear)
	}
}

func TestSelectionSeriesUppercased(t *testing.T) {
	f := viewFlags{series: []string{" corn ", "wheat"}}
	sel := f.selection(testTable(t))
	if len(sel.Series) != 2 || sel.Series[0] != "CORN" || sel.Series[1] != "WHEAT" {
		t.Errorf("series = %v, want [CORN WHEAT]", sel.Series)
	}
}

func TestRenderAndPersistWritesArtifacts(t *testing.T) {
	tmp := t.TempDir()
	prev := cfg
	cfg = &cfgpkg.Global{
		ChartWidth:    320,
		ChartHeight:   200,
		ReportsDir:    filepath.Join(tmp, "reports"),
		DefaultFormat: "table",
	}
	defer func() { cfg = prev }()

	view, err := engine.Filter(testTable(t), engine.Selection{StartYear: 2020, EndYear: 2025})
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	stats, corr, err := engine.Summarize(view)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	rep := &render.Report{
		Dataset:   "test",
		StartYear: 2020,
		EndYear:   2025,
		View:      view,
		Stats:     stats,
		Corr:      corr,
	}
	f := &viewFlags{
		format: "markdown",
		chart:  filepath.Join(tmp, "chart.png"),
		output: filepath.Join(tmp, "report.md"),
		save:   true,
	}
	if err := renderAndPersist("prices", rep, f, "Test Data", "Summary Statistics"); err != nil {
		t.Fatalf("renderAndPersist: %v", err)
	}

	for _, p := range []string{f.chart, f.output} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s to exist: %v", p, err)
		}
	}
	snaps, err := report.NewDir(cfg.ReportsDir).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("manifest has %d snapshots, want 1", len(snaps))
	}
	if snaps[0].Dataset != "prices" || snaps[0].ChartFile == "" {
		t.Errorf("snapshot = %+v, want dataset prices with a chart file", snaps[0])
	}
}
