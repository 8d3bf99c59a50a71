package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
	"github.com/lawqa/go-lawqa-backend/internal/search"
)

// LoadStatus classifies the outcome of the most recent data load. The browse
// pipeline surfaces it so that "the file failed to load" and "the file was
// empty or invalid" render differently from "your filters matched nothing".
type LoadStatus string

const (
	// StatusOK means a non-empty collection is loaded.
	StatusOK LoadStatus = "ok"
	// StatusNoData means the payload parsed but yielded zero valid records.
	StatusNoData LoadStatus = "no_data"
	// StatusLoadFailed means the fetch itself failed; the collection is empty.
	StatusLoadFailed LoadStatus = "load_failed"
)

// Snapshot is an immutable view of the loaded collection together with
// everything derived from it. A Snapshot is never mutated after construction;
// the Store swaps whole snapshots, so readers always see a consistent
// records/facets/matcher triple.
type Snapshot struct {
	Records  []domain.Record
	Facets   Facets
	Matcher  search.Matcher
	ByID     map[int]domain.Record
	Status   LoadStatus
	LoadedAt time.Time
}

// Record returns the record with the given id, if loaded.
func (s *Snapshot) Record(id int) (domain.Record, bool) {
	r, ok := s.ByID[id]
	return r, ok
}

// Store holds the current Snapshot and knows how to rebuild it from the
// configured Loader. Reads never block behind a reload: Reload builds the
// new snapshot outside the lock and swaps it in at the end.
type Store struct {
	loader  *Loader
	engine  search.Engine
	opts    []search.Option
	mu      sync.RWMutex
	current *Snapshot
}

// NewStore creates a Store that builds matchers with the given engine.
// The store starts empty (StatusNoData); call Reload to populate it.
func NewStore(loader *Loader, engine search.Engine, opts ...search.Option) *Store {
	s := &Store{loader: loader, engine: engine, opts: opts}
	s.current = s.build(nil, StatusNoData)
	return s
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Reload fetches, normalizes and republishes the collection. A fetch error
// publishes an empty StatusLoadFailed snapshot and returns the error so the
// caller can log it; normalization itself is fail-soft and never errors.
// Facet extraction and matcher construction run against the fully normalized
// collection only — never a partial one.
func (s *Store) Reload(ctx context.Context) error {
	raw, err := s.loader.Fetch(ctx)
	if err != nil {
		s.swap(s.build(nil, StatusLoadFailed))
		return err
	}
	records := Normalize(raw)
	status := StatusOK
	if len(records) == 0 {
		status = StatusNoData
	}
	s.swap(s.build(records, status))
	return nil
}

func (s *Store) build(records []domain.Record, status LoadStatus) *Snapshot {
	byID := make(map[int]domain.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	return &Snapshot{
		Records:  records,
		Facets:   ExtractFacets(records),
		Matcher:  search.New(records, s.engine, s.opts...),
		ByID:     byID,
		Status:   status,
		LoadedAt: time.Now().UTC(),
	}
}

func (s *Store) swap(next *Snapshot) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
}
