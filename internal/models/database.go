package models

import "time"

// NeverChecked is stored in dLastCheck columns until the first usage scan.
var NeverChecked = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// Database represents a row of the DB table
type Database struct {
	DatabaseID int64     `json:"database_id" db:"DatabaseId"`  // Primary key
	Name       string    `json:"name" db:"Name"`               // Unique database name
	NBytes     int64     `json:"n_bytes" db:"nBytes"`          // Last measured size
	DLastCheck time.Time `json:"d_last_check" db:"dLastCheck"` // Last usage scan
	DCreated   time.Time `json:"d_created" db:"dCreated"`      // Creation timestamp
	BEnabled   bool      `json:"b_enabled" db:"bEnabled"`      // Database enabled flag
}

// DBOwner links a database to its owning user
type DBOwner struct {
	DatabaseID int64  `json:"database_id" db:"DatabaseId"`
	UserID     int64  `json:"user_id" db:"UserId"`
	GroupID    *int64 `json:"group_id,omitempty" db:"GroupId"`
}
