// Package services – PrefsService
//
// This file implements the preference service for display settings. The only
// preference today is the theme; its value is opaque to the pipeline and
// storage layers, so validation lives here.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// Theme values accepted by SetTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// PrefsService reads and writes user display preferences.
type PrefsService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the key-value repository used by this service.
	Repo BookmarkRepo
}

// Theme returns the stored theme preference, defaulting to light when unset
// or unreadable.
func (s *PrefsService) Theme(ctx context.Context) string {
	v, err := s.Repo.Get(ctx, s.DB, domain.PrefKeyTheme)
	if err != nil || (v != ThemeLight && v != ThemeDark) {
		return ThemeLight
	}
	return v
}

// SetTheme stores the theme preference. Values outside {light, dark} are
// rejected with ErrInvalidTheme.
func (s *PrefsService) SetTheme(ctx context.Context, v string) error {
	if v != ThemeLight && v != ThemeDark {
		return ErrInvalidTheme
	}
	return s.Repo.Put(ctx, s.DB, domain.PrefKeyTheme, v)
}
