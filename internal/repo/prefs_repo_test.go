package repo

import (
	"context"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lawqa/go-lawqa-backend/internal/domain"
)

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid schema leakage across tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func TestGetPreference_Missing(t *testing.T) {
	db := newTestDB(t, &domain.Preference{})

	_, err := GetPreference(context.Background(), db, "bookmarks")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutPreference_InsertThenGet(t *testing.T) {
	db := newTestDB(t, &domain.Preference{})
	ctx := context.Background()

	if err := PutPreference(ctx, db, "theme", "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := GetPreference(ctx, db, "theme")
	if err != nil || got != "dark" {
		t.Fatalf("get: %q %v", got, err)
	}
}

func TestPutPreference_UpsertReplacesValue(t *testing.T) {
	db := newTestDB(t, &domain.Preference{})
	ctx := context.Background()

	if err := PutPreference(ctx, db, "bookmarks", "[1,2]"); err != nil {
		t.Fatalf("first put: %v", err)
	}
	if err := PutPreference(ctx, db, "bookmarks", "[3]"); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, err := GetPreference(ctx, db, "bookmarks")
	if err != nil || got != "[3]" {
		t.Fatalf("value not replaced: %q %v", got, err)
	}

	// Only one row may exist per key.
	var count int64
	db.Model(&domain.Preference{}).Where("key = ?", "bookmarks").Count(&count)
	if count != 1 {
		t.Fatalf("expected single row, got %d", count)
	}
}

func TestGetPreference_Error_NoTable(t *testing.T) {
	db := newTestDB(t) // intentionally NOT migrating preferences
	_, err := GetPreference(context.Background(), db, "theme")
	if err == nil || err == ErrNotFound {
		t.Fatalf("expected raw DB error, got %v", err)
	}
}
