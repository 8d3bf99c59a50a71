// Bookmark HTTP handlers.
//
// This file exposes REST endpoints for the bookmark set:
//   - GET  /bookmarks             (list bookmarked records)
//   - POST /bookmarks/{id}/toggle (flip membership)
//
// Idempotency:
// A toggle undoes itself when executed twice, so retries are dangerous. If the
// client supplies an Idempotency-Key header and a previous successful outcome
// exists for (client, record, key), the handler returns that recorded outcome
// and sets `Idempotency-Replayed: true` instead of toggling again.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
	"github.com/lawqa/go-lawqa-backend/internal/http/middleware"
	"github.com/lawqa/go-lawqa-backend/internal/repo"
	"github.com/lawqa/go-lawqa-backend/internal/services"
	"github.com/lawqa/go-lawqa-backend/internal/utils"
)

// msgInvalidItem is shown when a bookmark is requested for an unknown record.
const msgInvalidItem = "বৈধ আইটেম নয়"

//
// DTOs
//

// ListBookmarksResponse contains the bookmarked records in collection order.
type ListBookmarksResponse struct {
	Records []domain.Record `json:"records"`
	Count   int             `json:"count"`
	// Message is the localized empty-set notice; omitted when records exist.
	Message string `json:"message,omitempty"`
}

// ToggleBookmarkResponse reports the membership state after a toggle.
type ToggleBookmarkResponse struct {
	ID         int  `json:"id"`
	Bookmarked bool `json:"bookmarked"`
	Count      int  `json:"count"`
}

//
// Handlers
//

// ListBookmarks godoc
// @ID          listBookmarks
// @Summary     List bookmarked records
// @Description Returns the bookmarked subset of the collection in collection order.
// @Description Bookmarks pointing at ids no longer present are skipped.
// @Tags        Bookmarks
// @Produce     json
//
// @Success     200  {object} handlers.ListBookmarksResponse
// @Router      /bookmarks [get]
func (h *Handlers) ListBookmarks(c *gin.Context) {
	records := h.browseSvc.BookmarkedRecords()
	resp := ListBookmarksResponse{
		Records: records,
		Count:   len(records),
	}
	if len(records) == 0 {
		resp.Message = services.MsgNoBookmarks
	}
	ok(c, http.StatusOK, resp)
}

// ToggleBookmark godoc
// @ID          toggleBookmark
// @Summary     Toggle a bookmark
// @Description Flips bookmark membership for the given record. Adding requires the record
// @Description to exist in the current collection; removing is always allowed so stale
// @Description bookmarks can be cleaned up. Supports safe retries via Idempotency-Key.
// @Tags        Bookmarks
// @Accept      json
// @Produce     json
//
// @Param       X-Client-ID      header  string  false "Client instance ID (scopes idempotency)"  example(web-1)
// @Param       Idempotency-Key  header  string  false "Idempotency key for safe retries (UUID recommended)"
// @Param       id               path    int     true  "Record ID"
//
// @Success     200  {object} handlers.ToggleBookmarkResponse
// @Failure     400  {object} handlers.ErrorResponse "Bad request / unknown record"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /bookmarks/{id}/toggle [post]
func (h *Handlers) ToggleBookmark(c *gin.Context) {
	ctx := c.Request.Context()

	id := utils.AtoiDefault(c.Param("id"), 0)
	if id <= 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "record id must be a positive integer")
		return
	}

	clientID := middleware.ClientID(c)
	idemKey, _ := middleware.GetIdempotencyKey(c)

	// Idempotency (replay path) – serve the stored outcome if present.
	if idemKey != "" {
		if svc, okSvc := h.bmSvc.(*services.BookmarkService); okSvc && svc.DB != nil {
			if rec, err := repo.GetIdempotency(ctx, svc.DB, clientID, id, idemKey, time.Now().UTC()); err == nil && rec != nil {
				c.Header("Idempotency-Replayed", "true")
				ok(c, http.StatusOK, ToggleBookmarkResponse{
					ID:         id,
					Bookmarked: rec.Bookmarked,
					Count:      h.bmSvc.Count(),
				})
				return
			}
		}
	}

	bookmarked, err := h.bmSvc.Toggle(ctx, id, func(rid int) bool {
		_, lookupErr := h.browseSvc.Lookup(rid)
		return lookupErr == nil
	})
	if err != nil {
		switch err {
		case services.ErrInvalidItem:
			fail(c, http.StatusBadRequest, ErrCodeInvalidItem, msgInvalidItem)
		default:
			fail(c, http.StatusInternalServerError, ErrCodeToggleFailed, err.Error())
		}
		return
	}

	// Idempotency (store path) – best effort.
	if idemKey != "" {
		if svc, okSvc := h.bmSvc.(*services.BookmarkService); okSvc && svc.DB != nil {
			ttl := 24 * time.Hour
			_, _ = repo.CreateIdempotency(ctx, svc.DB, clientID, id, idemKey, bookmarked, http.StatusOK, ttl)
		}
	}

	ok(c, http.StatusOK, ToggleBookmarkResponse{
		ID:         id,
		Bookmarked: bookmarked,
		Count:      h.bmSvc.Count(),
	})
}
