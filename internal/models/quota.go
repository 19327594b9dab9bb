package models

import "time"

// Defaults applied to every new user.
const (
	DefaultUserDatabasesHard = 20
	DefaultUserBytesSoft     = 90 * 1024 * 1024
	DefaultUserBytesHard     = 100 * 1024 * 1024
)

// UserQuota holds per-user limits
type UserQuota struct {
	UserID         int64     `json:"user_id" db:"UserId"`
	NDatabasesHard int64     `json:"n_databases_hard" db:"nDatabasesHard"`
	NBytesSoft     int64     `json:"n_bytes_soft" db:"nBytesSoft"`
	NBytesHard     int64     `json:"n_bytes_hard" db:"nBytesHard"`
	DCreated       time.Time `json:"d_created" db:"dCreated"`
}

// NewUserQuota returns the quota a user receives at signup.
func NewUserQuota(userID int64, now time.Time) UserQuota {
	return UserQuota{
		UserID:         userID,
		NDatabasesHard: DefaultUserDatabasesHard,
		NBytesSoft:     DefaultUserBytesSoft,
		NBytesHard:     DefaultUserBytesHard,
		DCreated:       now,
	}
}

// DBQuota holds per-database byte ceilings
type DBQuota struct {
	DatabaseID int64     `json:"database_id" db:"DatabaseId"`
	NBytesSoft int64     `json:"n_bytes_soft" db:"nBytesSoft"`
	NBytesHard int64     `json:"n_bytes_hard" db:"nBytesHard"`
	DCreated   time.Time `json:"d_created" db:"dCreated"`
}

// QuotaTargetKind selects which quota table SetQuota writes to.
type QuotaTargetKind string

const (
	QuotaTargetUser     QuotaTargetKind = "user"
	QuotaTargetDatabase QuotaTargetKind = "database"
)

// QuotaTarget identifies a user or database quota row
type QuotaTarget struct {
	Kind QuotaTargetKind
	ID   int64
}

// UserTarget is shorthand for a user quota target.
func UserTarget(userID int64) QuotaTarget {
	return QuotaTarget{Kind: QuotaTargetUser, ID: userID}
}

// DatabaseTarget is shorthand for a database quota target.
func DatabaseTarget(databaseID int64) QuotaTarget {
	return QuotaTarget{Kind: QuotaTargetDatabase, ID: databaseID}
}
