package models

import (
	"database/sql"
	"time"
)

// ApiConfig holds per-platform credentials and sync settings. ApiKey and
// ClientSecret are stored encrypted and decrypted only for the duration of
// one sync.
type ApiConfig struct {
	ID              int64        `db:"id" json:"id"`
	Platform        string       `db:"platform" json:"platform"`
	ApiKey          string       `db:"api_key" json:"-"`
	ClientID        string       `db:"client_id" json:"client_id"`
	ClientSecret    string       `db:"client_secret" json:"-"`
	IsManualMode    bool         `db:"is_manual_mode" json:"is_manual_mode"`
	AutoSyncEnabled bool         `db:"auto_sync_enabled" json:"auto_sync_enabled"`
	SyncInterval    string       `db:"sync_interval" json:"sync_interval"`
	LastSyncAt      sql.NullTime `db:"last_sync_at" json:"last_sync_at"`
	NextSyncAt      sql.NullTime `db:"next_sync_at" json:"next_sync_at"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at" json:"updated_at"`
}
