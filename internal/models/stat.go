package models

import "time"

// UserStat caches aggregate usage for a user
type UserStat struct {
	UserID     int64     `json:"user_id" db:"UserId"`
	NDatabases int64     `json:"n_databases" db:"nDatabases"`
	NBytes     int64     `json:"n_bytes" db:"nBytes"`
	DLastCheck time.Time `json:"d_last_check" db:"dLastCheck"`
}
