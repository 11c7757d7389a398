package dashboard

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/index"
	"github.com/ziadkadry99/depviz/internal/observability"
)

// Config controls how a dataset becomes a snapshot.
type Config struct {
	Index      index.Options
	LinkScheme string
	Root       string   // used when the dataset carries no root
	Exclude    []string // doublestar globs removed before indexing
}

// Snapshot is an immutable dataset together with everything derived from it.
type Snapshot struct {
	Dataset  *dataset.Dataset
	Index    *index.Index
	Tree     *FileTree
	Links    Links
	LoadedAt time.Time
}

// NewSnapshot filters ds and builds the index and tree. ds is not modified.
func NewSnapshot(ds *dataset.Dataset, cfg Config) *Snapshot {
	if ds == nil {
		ds = &dataset.Dataset{}
	}
	cp := *ds
	filtered := dataset.Filter(&cp, cfg.Exclude).WithRoot(cfg.Root)

	return &Snapshot{
		Dataset:  filtered,
		Index:    index.Build(filtered, cfg.Index),
		Tree:     BuildTree(filtered.Paths()),
		Links:    Links{Scheme: cfg.LinkScheme, Root: filtered.Root},
		LoadedAt: time.Now(),
	}
}

// LoadSnapshot reads a dataset file and builds its snapshot.
func LoadSnapshot(path string, cfg Config) (*Snapshot, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(ds, cfg), nil
}

// Store holds the current snapshot. Readers take one snapshot per request;
// reloads swap in a complete replacement.
type Store struct {
	cur atomic.Pointer[Snapshot]
}

// NewStore creates a store holding snap.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.Swap(snap)
	return s
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.cur.Load()
}

// Swap installs snap as the active snapshot.
func (s *Store) Swap(snap *Snapshot) {
	s.cur.Store(snap)
	observability.DatasetFiles.Set(float64(len(snap.Dataset.Files)))
}

// Reload rebuilds the snapshot from path. On failure the previous snapshot
// stays active.
func (s *Store) Reload(path string, cfg Config) error {
	snap, err := LoadSnapshot(path, cfg)
	if err != nil {
		observability.DatasetReloadsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("reloading dataset: %w", err)
	}
	s.Swap(snap)
	observability.DatasetReloadsTotal.WithLabelValues("ok").Inc()
	slog.Info("dataset reloaded", "component", "store", "path", path, "files", len(snap.Dataset.Files))
	return nil
}
