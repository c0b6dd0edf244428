package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// The USDA quick-stats exports are long-format CSVs: one row per
// year x entity observation, with the numeric value in a "Value" column.
// Suppressed or withheld cells carry markers like (D) or (NA); those and any
// unparsable cell are treated as missing, never as an error.

// Dataset identifiers used by the Store and the CLI.
const (
	IDPrices = "prices"
	IDLand   = "land"
	IDIndex  = "index"
)

// IndexSeries is the single column name of the price received index table.
const IndexSeries = "INDEX"

// Crops kept from the crop prices export.
var Crops = []string{"CORN", "SOYBEANS", "WHEAT"}

// States kept from the cropland value export.
var States = []string{"KENTUCKY", "INDIANA", "OHIO", "TENNESSEE"}

// longOptions describes how to pivot one long-format export into a Table.
type longOptions struct {
	name      string
	entityCol string   // column holding the series key; empty = fixed series
	entities  []string // allowed entity values (upper case); empty = all
	fixed     string   // series name when entityCol is empty
	geoLevel  string   // required "Geo Level" value; empty = no restriction
	minYear   int
	maxYear   int
}

// LoadCropPrices loads the national corn/soybeans/wheat price table
// ($/bushel, 1975-2025).
func LoadCropPrices(path string, log zerolog.Logger) (*Table, error) {
	return loadLong(path, log, longOptions{
		name:      "Crop Prices",
		entityCol: "Commodity",
		entities:  Crops,
		geoLevel:  "NATIONAL",
		minYear:   1975,
		maxYear:   2025,
	})
}

// LoadCroplandValues loads the four-state cropland value table
// ($/acre, 1997-2025).
func LoadCroplandValues(path string, log zerolog.Logger) (*Table, error) {
	return loadLong(path, log, longOptions{
		name:      "Cropland Values",
		entityCol: "State",
		entities:  States,
		minYear:   1997,
		maxYear:   2025,
	})
}

// LoadPriceIndex loads the national price received index table
// (2011 = 100, 1990-2025).
func LoadPriceIndex(path string, log zerolog.Logger) (*Table, error) {
	return loadLong(path, log, longOptions{
		name:     "Price Received Index",
		fixed:    IndexSeries,
		geoLevel: "NATIONAL",
		minYear:  1990,
		maxYear:  2025,
	})
}

func loadLong(path string, log zerolog.Logger, opt longOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opt.name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty file %s", opt.name, path)
		}
		return nil, fmt.Errorf("%s: read header: %w", opt.name, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	yearIdx, ok := col["year"]
	if !ok {
		return nil, fmt.Errorf("%s: missing Year column", opt.name)
	}
	valIdx, ok := col["value"]
	if !ok {
		return nil, fmt.Errorf("%s: missing Value column", opt.name)
	}
	entityIdx := -1
	if opt.entityCol != "" {
		entityIdx, ok = col[strings.ToLower(opt.entityCol)]
		if !ok {
			return nil, fmt.Errorf("%s: missing %s column", opt.name, opt.entityCol)
		}
	}
	geoIdx := -1
	if opt.geoLevel != "" {
		geoIdx, ok = col["geo level"]
		if !ok {
			return nil, fmt.Errorf("%s: missing Geo Level column", opt.name)
		}
	}

	series := opt.entities
	if opt.entityCol == "" {
		series = []string{opt.fixed}
	}
	b, err := NewBuilder(opt.name, series...)
	if err != nil {
		return nil, err
	}
	allowed := make(map[string]bool, len(opt.entities))
	for _, e := range opt.entities {
		allowed[e] = true
	}

	rows, kept, missing := 0, 0, 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%s: read row %d: %w", opt.name, rows+1, err)
		}
		rows++
		if geoIdx >= 0 && (geoIdx >= len(rec) || !strings.EqualFold(strings.TrimSpace(rec[geoIdx]), opt.geoLevel)) {
			continue
		}
		name := opt.fixed
		if entityIdx >= 0 {
			if entityIdx >= len(rec) {
				continue
			}
			name = strings.ToUpper(strings.TrimSpace(rec[entityIdx]))
			if len(allowed) > 0 && !allowed[name] {
				continue
			}
		}
		if yearIdx >= len(rec) {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(rec[yearIdx]))
		if err != nil || year < opt.minYear || year > opt.maxYear {
			continue
		}
		var cell Value
		if valIdx < len(rec) {
			cell = parseValue(rec[valIdx])
		}
		if !cell.Valid {
			missing++
		}
		if err := b.Set(year, name, cell); err != nil {
			return nil, err
		}
		kept++
	}

	t := b.Build()
	log.Debug().
		Str("dataset", opt.name).
		Int("rows", rows).
		Int("kept", kept).
		Int("missing", missing).
		Int("years", t.Len()).
		Msg("dataset loaded")
	return t, nil
}

// parseValue converts a raw CSV cell to an optional numeric value.
// Thousands separators are stripped; suppression markers such as (D), (NA),
// (Z) and anything else unparsable count as missing.
func parseValue(s string) Value {
	raw := strings.TrimSpace(s)
	if raw == "" || strings.HasPrefix(raw, "(") {
		return None()
	}
	raw = strings.ReplaceAll(raw, ",", "")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return None()
	}
	return Some(f)
}
