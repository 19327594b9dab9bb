package models

// Ledger event types published after a committed write.
const (
	EventUserCreated      = "user.created"
	EventUserDeleted      = "user.deleted"
	EventUserEnabled      = "user.enabled"
	EventUserStatUpdated  = "user.stat_updated"
	EventDatabaseCreated  = "database.created"
	EventDatabaseDeleted  = "database.deleted"
	EventDatabaseEnabled  = "database.enabled"
	EventOwnerAssigned    = "database.owner_assigned"
	EventUsageUpdated     = "database.usage_updated"
	EventQuotaSet         = "quota.set"
	EventDatabaseLimitSet = "quota.database_limit_set"
)

// LedgerEvent is the message written to Kafka for every ledger change
type LedgerEvent struct {
	EventID    string `json:"event_id"`              // Unique event identifier
	Timestamp  int64  `json:"timestamp"`             // Unix timestamp of the change
	Type       string `json:"type"`                  // One of the Event* constants
	UserID     int64  `json:"user_id,omitempty"`     // Affected user, if any
	DatabaseID int64  `json:"database_id,omitempty"` // Affected database, if any
	Payload    any    `json:"payload,omitempty"`     // Event specific data
}
