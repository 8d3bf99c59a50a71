// Package services defines the business logic for browsing, bookmarks, and
// preferences. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked by
// callers.
//
// These errors are intended for internal use by the service layer; translation
// into user-facing messages or HTTP status codes is performed at the handler
// layer.
package services

import "errors"

var (
	// ErrInvalidItem is returned when a bookmark is added for an id that does
	// not exist in the current record collection. Removal is never subject to
	// this check.
	ErrInvalidItem = errors.New("not a valid item")

	// ErrRecordNotFound indicates that the requested record id does not exist
	// in the current collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidTheme is returned when a theme value outside the allowed set
	// (currently "light" or "dark") is submitted.
	ErrInvalidTheme = errors.New(`theme must be "light" or "dark"`)
)
