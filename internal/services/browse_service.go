// Package services – BrowseService
//
// This file implements the browse pipeline, the core of the application: it
// combines the record collection, the search matcher, the user's query state
// and the bookmark set into an ordered, paginated result list plus a
// localized result-count message and the canonical shareable query string.
//
// The pipeline applies its steps in a fixed order. Keyword search runs first
// and may reorder the working list by relevance; the conjunctive filters that
// follow preserve that order, and only an explicit non-relevance sort
// overrides it. The pipeline is idempotent and side-effect-free with respect
// to the record collection and the bookmark set — it only reads them.
//
// Observability: Browse is OpenTelemetry-instrumented; spans include the
// keyword, sort mode, and page.
package services

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lawqa/go-lawqa-backend/internal/catalog"
	"github.com/lawqa/go-lawqa-backend/internal/domain"
	"github.com/lawqa/go-lawqa-backend/internal/paginate"
)

// User-facing status messages. The UI is Bengali; these strings are part of
// the product surface, not debug output.
const (
	msgResultsFound = "%d ফলাফল পাওয়া গেছে"
	msgNoResults    = "কোনো ফলাফল পাওয়া যায়নি"
	msgNoData       = "ডেটা খালি বা অকার্যকর।"
	msgLoadFailed   = "ডেটা লোড করতে ব্যর্থ।"

	// MsgNoBookmarks is shown by the bookmarks view when the set is empty.
	MsgNoBookmarks = "কোনো বুকমার্ক নেই"
)

// BrowseService runs the filter/sort pipeline against the current catalog
// snapshot. It is safe for concurrent use: every call reads one immutable
// snapshot and the bookmark set is internally synchronized.
type BrowseService struct {
	// Store provides the current collection snapshot.
	Store *catalog.Store
	// Bookmarks is consulted by the bookmark-only filter.
	Bookmarks *BookmarkService
	// PageSize is the fixed page size; defaults to paginate.DefaultPageSize.
	PageSize int
}

// BrowseResult is the outcome of one pipeline run: the visible page of the
// ordered result list plus everything the presentation layer needs to render
// counts, continuation and share links.
type BrowseResult struct {
	// Items is the visible prefix of the ordered result list.
	Items []domain.Record
	// Total is the size of the full result list before pagination.
	Total int
	// Page and PageSize describe the applied window.
	Page     int
	PageSize int
	// HasMore reports whether a continuation ("show more") must be offered.
	HasMore bool
	// Status carries the data-load state so callers can distinguish
	// "no matches" from "no data" and "failed to load".
	Status catalog.LoadStatus
	// Message is the localized result-count or load-state message.
	Message string
	// ShareQuery is the canonical query-string form of the applied state.
	ShareQuery string
}

// Browse runs the pipeline for the given query state and page number.
func (s *BrowseService) Browse(ctx context.Context, q domain.QueryState, page int) BrowseResult {
	tr := otel.Tracer("services/BrowseService")
	_, span := tr.Start(ctx, "Browse",
		trace.WithAttributes(
			attribute.String("query.keyword", q.Keyword),
			attribute.String("query.sort", string(q.Sort)),
			attribute.Int("query.page", page),
		),
	)
	defer span.End()

	snap := s.Store.Snapshot()
	w := paginate.NewWindow(page, s.PageSize)

	res := BrowseResult{
		Page:       w.Page,
		PageSize:   w.PageSize,
		Status:     snap.Status,
		ShareQuery: q.Encode(),
	}

	// A failed or empty load is terminal for the pipeline: the distinct
	// message replaces the result count so the user never mistakes missing
	// data for an over-narrow filter.
	switch snap.Status {
	case catalog.StatusLoadFailed:
		res.Message = msgLoadFailed
		return res
	case catalog.StatusNoData:
		res.Message = msgNoData
		return res
	}

	list := s.run(snap, q)

	res.Total = len(list)
	if res.Total > 0 {
		res.Message = fmt.Sprintf(msgResultsFound, res.Total)
	} else {
		res.Message = msgNoResults
	}
	res.Items, res.HasMore = w.Visible(list)
	span.SetAttributes(attribute.Int("result.total", res.Total))
	return res
}

// run executes the filter/sort steps and returns the full ordered result
// list. The returned slice is freshly allocated; the snapshot is never
// mutated.
func (s *BrowseService) run(snap *catalog.Snapshot, q domain.QueryState) []domain.Record {
	var list []domain.Record

	// Step 1: keyword search replaces the working list and may reorder it
	// by relevance. Without a keyword, collection order is the baseline.
	if kw := domain.ClipKeyword(q.Keyword); kw != "" {
		matches := snap.Matcher.Search(kw)
		list = make([]domain.Record, 0, len(matches))
		for _, m := range matches {
			list = append(list, m.Record)
		}
	} else {
		list = append([]domain.Record(nil), snap.Records...)
	}

	// Step 2: conjunctive filters. All active conditions must hold; the
	// working order is preserved.
	list = s.filter(list, q)

	// Step 3: explicit sort. Relevance keeps step 1's order untouched.
	s.sortList(list, q.Sort)
	return list
}

func (s *BrowseService) filter(list []domain.Record, q domain.QueryState) []domain.Record {
	out := list[:0]
	for _, r := range list {
		if q.Section != "" && r.LawSection != q.Section {
			continue
		}
		if q.Year != nil && (r.Year == nil || *r.Year != *q.Year) {
			continue
		}
		if !hasAllTags(r, q.Tags) {
			continue
		}
		if q.BookmarksOnly && !s.Bookmarks.Contains(r.ID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *BrowseService) sortList(list []domain.Record, mode domain.SortMode) {
	switch mode {
	case domain.SortNewest:
		sort.SliceStable(list, func(i, j int) bool {
			yi, yj := list[i].YearOrZero(), list[j].YearOrZero()
			if yi != yj {
				return yi > yj
			}
			return list[i].ID < list[j].ID
		})
	case domain.SortAZ:
		c := catalog.NewCollator()
		sort.SliceStable(list, func(i, j int) bool {
			if cmp := c.CompareString(list[i].Question, list[j].Question); cmp != 0 {
				return cmp < 0
			}
			return list[i].ID < list[j].ID
		})
	case domain.SortSection:
		c := catalog.NewCollator()
		sort.SliceStable(list, func(i, j int) bool {
			if cmp := c.CompareString(list[i].LawSection, list[j].LawSection); cmp != 0 {
				return cmp < 0
			}
			return list[i].ID < list[j].ID
		})
	}
	// SortRelevance: no additional sort.
}

// Facets returns the derived filter choices of the current snapshot.
func (s *BrowseService) Facets() catalog.Facets {
	return s.Store.Snapshot().Facets
}

// Lookup resolves a record id against the current snapshot. Used by the
// deep-link path; a miss returns ErrRecordNotFound.
func (s *BrowseService) Lookup(id int) (domain.Record, error) {
	r, ok := s.Store.Snapshot().Record(id)
	if !ok {
		return domain.Record{}, ErrRecordNotFound
	}
	return r, nil
}

// BookmarkedRecords returns the bookmarked subset of the current collection
// in collection order. Bookmarks pointing at ids no longer present are
// silently skipped.
func (s *BrowseService) BookmarkedRecords() []domain.Record {
	snap := s.Store.Snapshot()
	out := make([]domain.Record, 0, s.Bookmarks.Count())
	for _, r := range snap.Records {
		if s.Bookmarks.Contains(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

func hasAllTags(r domain.Record, tags []string) bool {
	for _, t := range tags {
		if !r.HasTag(t) {
			return false
		}
	}
	return true
}
