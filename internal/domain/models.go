// Package domain – persistence models.
//
// This file defines the key-value Preference model that backs bookmarks and
// the theme preference. Values are opaque to the storage layer; interpretation
// happens in the service that owns the key.
package domain

import "time"

// Preference is a single persisted key-value entry. The application stores
// the bookmark id list (JSON-encoded integer array under key "bookmarks")
// and the theme preference (plain string under key "theme").
//
// Every write replaces the full value (no incremental diffs), matching the
// all-or-nothing persistence contract of the bookmark set.
type Preference struct {
	Key       string    `json:"key"   gorm:"type:varchar(64);primaryKey"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Preference.
func (Preference) TableName() string { return "preferences" }

// Well-known preference keys.
const (
	PrefKeyBookmarks = "bookmarks"
	PrefKeyTheme     = "theme"
)
