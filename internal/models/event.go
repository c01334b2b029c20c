package models

// Account lifecycle event types published to Kafka
const (
	EventAccountRegistered = "account_registered"
	EventAccountDeleted    = "account_deleted"
)

// AccountEvent represents an account lifecycle event
type AccountEvent struct {
	EventID   string `json:"event_id"`           // Unique event identifier
	Event     string `json:"event"`              // Event type
	AccountID string `json:"account_id"`         // Affected account
	Username  string `json:"username,omitempty"` // Username, when known
	Timestamp int64  `json:"timestamp"`          // Unix timestamp
}
