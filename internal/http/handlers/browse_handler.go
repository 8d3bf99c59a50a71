// Browse HTTP handlers.
//
// This file exposes REST endpoints for the Q&A record collection:
//   - GET /records  (search + filter + sort + paginate, deep link via ?id=)
//   - GET /facets   (derived filter choices)
//
// Handlers are transport-thin: they decode query state, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lawqa/go-lawqa-backend/internal/catalog"
	"github.com/lawqa/go-lawqa-backend/internal/domain"
	"github.com/lawqa/go-lawqa-backend/internal/services"
	"github.com/lawqa/go-lawqa-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// BrowseService defines the read-side pipeline operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type BrowseService interface {
	// Browse runs the search/filter/sort pipeline and returns the visible page.
	Browse(ctx context.Context, q domain.QueryState, page int) services.BrowseResult
	// Facets returns the derived filter choices of the current collection.
	Facets() catalog.Facets
	// Lookup resolves a single record id against the current collection.
	Lookup(id int) (domain.Record, error)
	// BookmarkedRecords returns the bookmarked subset in collection order.
	BookmarkedRecords() []domain.Record
}

// BookmarkService defines bookmark-set operations consumed by HTTP handlers.
type BookmarkService interface {
	// Toggle flips membership for id; exists guards additions.
	Toggle(ctx context.Context, id int, exists func(int) bool) (bool, error)
	// Contains reports membership.
	Contains(id int) bool
	// Count returns the size of the bookmark set.
	Count() int
}

// PrefsService defines display-preference operations consumed by HTTP handlers.
type PrefsService interface {
	// Theme returns the stored theme, defaulting when unset.
	Theme(ctx context.Context) string
	// SetTheme stores the theme preference.
	SetTheme(ctx context.Context, v string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for records, bookmarks, and preferences.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	browseSvc BrowseService
	bmSvc     BookmarkService
	prefsSvc  PrefsService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(browseSvc BrowseService, bmSvc BookmarkService, prefsSvc PrefsService) *Handlers {
	return &Handlers{browseSvc: browseSvc, bmSvc: bmSvc, prefsSvc: prefsSvc}
}

// maxPage bounds the ?page= parameter. The prefix paginator treats any page
// past the end as "show everything", so the cap only needs to keep absurd
// values out of the pipeline.
const maxPage = 100000

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	Total    int  `json:"total"`
	HasMore  bool `json:"has_more"`
}

// ListRecordsResponse wraps the visible page of the result list together with
// everything a client needs to render counts, continuation, share links and
// deep-link highlights.
type ListRecordsResponse struct {
	Records    []domain.Record `json:"records"`
	Pagination Pagination      `json:"pagination"`
	// Status is the data-load state: ok, no_data or load_failed.
	Status string `json:"status"`
	// Message is the localized result-count or load-state notice.
	Message string `json:"message"`
	// ShareQuery is the canonical query-string form of the applied state.
	ShareQuery string `json:"share_query"`
	// Highlight is the deep-linked record when ?id= resolved; an unmatched
	// or malformed id leaves it unset.
	Highlight *domain.Record `json:"highlight,omitempty"`
	// Related resolves the highlight's related ids; stale ids are skipped.
	Related []domain.Record `json:"related,omitempty"`
}

//
// Handlers
//

// ListRecords godoc
// @ID          listRecords
// @Summary     Browse the record collection
// @Description Runs the search/filter/sort pipeline over the collection and returns the
// @Description visible page. All filters are conjunctive. ?id= deep-links one record,
// @Description returned as highlight alongside the list.
// @Tags        Records
// @Produce     json
//
// @Param       q          query  string  false "Search keyword"
// @Param       section    query  string  false "Law section filter (exact match)"
// @Param       year       query  int     false "Year filter (exact match)"
// @Param       tags       query  string  false "Comma-separated tags (all must match)"
// @Param       sort       query  string  false "Sort mode"  Enums(relevance, newest, az, section)
// @Param       bookmarks  query  bool    false "Restrict to bookmarked records"
// @Param       page       query  int     false "Page number" minimum(1) default(1)
// @Param       id         query  int     false "Deep-link record id"
//
// @Success     200  {object} handlers.ListRecordsResponse
// @Router      /records [get]
func (h *Handlers) ListRecords(c *gin.Context) {
	ctx := c.Request.Context()

	q := domain.ParseQuery(c.Request.URL.Query())
	page := utils.ClampInt(utils.AtoiDefault(c.Query("page"), 1), 1, maxPage)

	// Deep link: a non-integer or unmatched id is silently dropped and the
	// list renders without a highlight, same as following a stale share URL.
	var highlight *domain.Record
	var related []domain.Record
	if id := utils.AtoiDefault(c.Query("id"), 0); id > 0 {
		if rec, err := h.browseSvc.Lookup(id); err == nil {
			highlight = &rec
			for _, rid := range rec.RelatedIDs {
				if rr, err := h.browseSvc.Lookup(rid); err == nil {
					related = append(related, rr)
				}
			}
		}
	}

	res := h.browseSvc.Browse(ctx, q, page)

	share := res.ShareQuery
	if highlight != nil {
		share = domain.ShareQuery(highlight.ID)
	}
	ok(c, http.StatusOK, ListRecordsResponse{
		Records: res.Items,
		Pagination: Pagination{
			Page:     res.Page,
			PageSize: res.PageSize,
			Total:    res.Total,
			HasMore:  res.HasMore,
		},
		Status:     string(res.Status),
		Message:    res.Message,
		ShareQuery: share,
		Highlight:  highlight,
		Related:    related,
	})
}

// GetFacets godoc
// @ID          getFacets
// @Summary     List filter facets
// @Description Returns the sections, years and tags derived from the current collection.
// @Description Sections and tags are ordered by Bengali collation, years newest first.
// @Tags        Records
// @Produce     json
//
// @Success     200  {object} catalog.Facets
// @Router      /facets [get]
func (h *Handlers) GetFacets(c *gin.Context) {
	ok(c, http.StatusOK, h.browseSvc.Facets())
}
