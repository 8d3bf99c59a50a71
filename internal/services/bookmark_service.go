// Package services – BookmarkService
//
// This file implements the BookmarkService, which owns the persisted set of
// bookmarked record ids. The set is loaded once at startup, mutated only by
// explicit toggle actions, and re-persisted in full after every successful
// mutation. Persistence is best-effort: a storage failure is logged and the
// in-memory set remains authoritative for the session.
//
// Adding a bookmark requires the id to exist in the current record
// collection; removal is always allowed, even for ids that no longer
// resolve (the collection may have shrunk since the bookmark was made).
package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// BookmarkRepo defines the persistence contract required by BookmarkService.
// It is the key-value preference store; the bookmark set lives under a single
// key as a JSON-encoded integer array.
type BookmarkRepo interface {
	// Get returns the value stored under key, or repo.ErrNotFound.
	Get(ctx context.Context, db *gorm.DB, key string) (string, error)
	// Put replaces the value stored under key in full.
	Put(ctx context.Context, db *gorm.DB, key, value string) error
}

// BookmarkService holds the in-memory bookmark set and coordinates its
// persistence. All methods are safe for concurrent use.
type BookmarkService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the key-value repository used by this service.
	Repo BookmarkRepo

	mu  sync.RWMutex
	set map[int]struct{}
}

// NewBookmarkService constructs a BookmarkService with an empty set.
// Call Load to restore the persisted set.
func NewBookmarkService(db *gorm.DB, r BookmarkRepo) *BookmarkService {
	return &BookmarkService{DB: db, Repo: r, set: make(map[int]struct{})}
}

// Load restores the bookmark set from storage. Corrupt or missing persisted
// data degrades to an empty set; non-integer entries are discarded. Load
// never fails the caller.
func (s *BookmarkService) Load(ctx context.Context) {
	raw, err := s.Repo.Get(ctx, s.DB, domain.PrefKeyBookmarks)
	if err != nil {
		return
	}
	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt bookmark list")
		return
	}
	set := make(map[int]struct{}, len(parsed))
	for _, v := range parsed {
		if n, ok := v.(float64); ok && n == math.Trunc(n) {
			set[int(n)] = struct{}{}
		}
	}
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
}

// Toggle flips the bookmark state of id. Removing is always allowed; adding
// requires exists(id) to hold, otherwise ErrInvalidItem is returned and the
// set is unchanged. Every successful mutation persists the full updated set.
//
// The returned flag reports the state after the toggle: true when the record
// is now bookmarked.
func (s *BookmarkService) Toggle(ctx context.Context, id int, exists func(int) bool) (bool, error) {
	s.mu.Lock()
	if _, ok := s.set[id]; ok {
		delete(s.set, id)
		s.mu.Unlock()
		s.persist(ctx)
		return false, nil
	}
	if exists == nil || !exists(id) {
		s.mu.Unlock()
		return false, ErrInvalidItem
	}
	s.set[id] = struct{}{}
	s.mu.Unlock()
	s.persist(ctx)
	return true, nil
}

// Contains reports whether id is bookmarked.
func (s *BookmarkService) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.set[id]
	return ok
}

// IDs returns the bookmarked ids in ascending order.
func (s *BookmarkService) IDs() []int {
	s.mu.RLock()
	ids := make([]int, 0, len(s.set))
	for id := range s.set {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Ints(ids)
	return ids
}

// Count returns the number of bookmarked ids.
func (s *BookmarkService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.set)
}

// persist writes the full current set. Failures are logged, not returned:
// the in-memory set stays authoritative for the session either way.
func (s *BookmarkService) persist(ctx context.Context) {
	data, err := json.Marshal(s.IDs())
	if err != nil {
		log.Warn().Err(err).Msg("could not encode bookmarks")
		return
	}
	if err := s.Repo.Put(ctx, s.DB, domain.PrefKeyBookmarks, string(data)); err != nil {
		log.Warn().Err(err).Msg("could not persist bookmarks")
	}
}
