// Package report persists dashboard snapshots: the markdown report and
// optional chart PNG for a filtered view, tracked in a yaml manifest.
package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/22kromerky/agdash/internal/utils"
)

const manifestFileName = "manifest.yaml"

// Snapshot records one saved report.
type Snapshot struct {
	ID         string    `yaml:"id"`
	Dataset    string    `yaml:"dataset"`
	Series     []string  `yaml:"series"`
	StartYear  int       `yaml:"start_year"`
	EndYear    int       `yaml:"end_year"`
	ReportFile string    `yaml:"report_file"`
	ChartFile  string    `yaml:"chart_file,omitempty"`
	CreatedAt  time.Time `yaml:"created_at"`
}

// Manifest is the on-disk index of snapshots.
type Manifest struct {
	Snapshots []Snapshot `yaml:"snapshots"`
}

// Dir manages a reports directory.
type Dir struct {
	path string
}

// NewDir returns a Dir rooted at path. The directory is created on first Save.
func NewDir(path string) *Dir { return &Dir{path: path} }

// Path returns the on-disk reports directory.
func (d *Dir) Path() string { return d.path }

// Save writes the markdown report (and chart, when non-nil) under a fresh
// snapshot ID and appends the snapshot to the manifest atomically.
func (d *Dir) Save(dataset string, series []string, startYear, endYear int, markdown string, chartPNG []byte) (*Snapshot, error) {
	if err := utils.EnsureDir(d.path); err != nil {
		return nil, fmt.Errorf("ensure reports dir: %w", err)
	}
	id := uuid.NewString()
	snap := &Snapshot{
		ID:         id,
		Dataset:    dataset,
		Series:     append([]string(nil), series...),
		StartYear:  startYear,
		EndYear:    endYear,
		ReportFile: id + ".md",
		CreatedAt:  time.Now(),
	}
	if err := utils.SafeWriteFile(filepath.Join(d.path, snap.ReportFile), []byte(markdown)); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}
	if chartPNG != nil {
		snap.ChartFile = id + ".png"
		if err := utils.SafeWriteFile(filepath.Join(d.path, snap.ChartFile), chartPNG); err != nil {
			return nil, fmt.Errorf("write chart: %w", err)
		}
	}

	m, err := d.load()
	if err != nil {
		return nil, err
	}
	m.Snapshots = append(m.Snapshots, *snap)
	if err := d.save(m); err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns the saved snapshots, oldest first.
func (d *Dir) List() ([]Snapshot, error) {
	m, err := d.load()
	if err != nil {
		return nil, err
	}
	return m.Snapshots, nil
}

func (d *Dir) load() (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(d.path, manifestFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func (d *Dir) save(m *Manifest) error {
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return utils.SafeWriteFile(filepath.Join(d.path, manifestFileName), b)
}
