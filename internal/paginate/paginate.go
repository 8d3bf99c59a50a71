// Package paginate implements the prefix pagination model used by the browse
// view: the visible slice is always result[0 : page*pageSize], never a true
// offset window. "Show more" grows the prefix by one page; any change to the
// result list's composition restarts from page 1 (a client contract — the
// server is stateless and simply recomputes the prefix it is asked for).
//
// Because the prefix always re-slices from the start, page-size changes
// mid-session are unsupported by design.
package paginate

import "github.com/lawqa/go-lawqa-backend/internal/domain"

// DefaultPageSize matches the fixed page size of the browse view.
const DefaultPageSize = 10

// Window is a (pageSize, page) pair with clamping applied.
type Window struct {
	Page     int
	PageSize int
}

// NewWindow clamps page to >= 1 and pageSize to DefaultPageSize when not
// positive.
func NewWindow(page, pageSize int) Window {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Window{Page: page, PageSize: pageSize}
}

// Visible returns the prefix of list revealed by the window, and whether a
// continuation ("show more") should be offered. The returned slice aliases
// list; callers must not mutate it.
func (w Window) Visible(list []domain.Record) (visible []domain.Record, hasMore bool) {
	size := w.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	// Compare against the page count instead of multiplying page*size: an
	// arbitrarily large page must mean "the whole list", and the product
	// could overflow into a negative slice bound.
	if w.Page >= (len(list)+size-1)/size {
		return list, false
	}
	return list[:w.Page*size], true
}
