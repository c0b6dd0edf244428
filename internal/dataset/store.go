package dataset

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

// Default file names of the three exports inside the data directory.
const (
	cropPricesFile = "Crop Prices.csv"
	croplandFile   = "Cropland Value.csv"
	priceIndexFile = "PriceReceivedIndex.csv"
)

// Store holds the loaded tables keyed by dataset ID. Tables are loaded once
// and never mutated afterwards.
type Store struct {
	tables map[string]*Table
}

// LoadStore reads the three dataset files from dir.
func LoadStore(dir string, log zerolog.Logger) (*Store, error) {
	prices, err := LoadCropPrices(filepath.Join(dir, cropPricesFile), log)
	if err != nil {
		return nil, err
	}
	land, err := LoadCroplandValues(filepath.Join(dir, croplandFile), log)
	if err != nil {
		return nil, err
	}
	index, err := LoadPriceIndex(filepath.Join(dir, priceIndexFile), log)
	if err != nil {
		return nil, err
	}
	return &Store{tables: map[string]*Table{
		IDPrices: prices,
		IDLand:   land,
		IDIndex:  index,
	}}, nil
}

// NewStore builds a store from already-loaded tables. Used by tests and by
// callers that load tables individually.
func NewStore(tables map[string]*Table) *Store {
	cp := make(map[string]*Table, len(tables))
	for k, v := range tables {
		cp[k] = v
	}
	return &Store{tables: cp}
}

// Table returns the table for a dataset ID.
func (s *Store) Table(id string) (*Table, error) {
	t, ok := s.tables[id]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", id)
	}
	return t, nil
}

// IDs returns the known dataset IDs in sorted order.
func (s *Store) IDs() []string {
	out := make([]string, 0, len(s.tables))
	for id := range s.tables {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
