// Package domain defines the core persistence models for the application.
// These types are used by GORM for database schema mapping and are shared
// across the repository and service layers.
package domain

import "time"

// Idempotency records the outcome of a previously processed bookmark toggle,
// keyed by (client_id, record_id, key). A toggle is the canonical
// non-idempotent operation in this API: a blind client retry would flip the
// bookmark straight back. Storing the first outcome lets handlers replay it
// instead of re-executing the side effect.
type Idempotency struct {
	ID         string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	ClientID   string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_client_record_key,priority:1"`
	RecordID   int       `gorm:"type:INTEGER NOT NULL;uniqueIndex:ux_client_record_key,priority:2"`
	Key        string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_client_record_key,priority:3"`
	Bookmarked bool      `gorm:"type:BOOLEAN NOT NULL"`
	Status     int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt  time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt  time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
