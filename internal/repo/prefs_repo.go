// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the key-value
// Preference model that backs the bookmark set and the theme preference.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence.
//
// Error semantics:
//   - GetPreference returns ErrNotFound when the key has never been written.
//   - On DB errors, the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// GetPreference fetches the value stored under key, or ErrNotFound.
func GetPreference(ctx context.Context, db *gorm.DB, key string) (string, error) {
	var p domain.Preference
	err := db.WithContext(ctx).Where("key = ?", key).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return p.Value, nil
}

// PutPreference stores value under key, replacing any previous value in full.
func PutPreference(ctx context.Context, db *gorm.DB, key, value string) error {
	p := domain.Preference{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&p).Error
}
