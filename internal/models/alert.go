package models

import "gorm.io/datatypes"

// Alert statuses produced by the lifecycle action mapping.
const (
	StatusApproved      = "Approved"
	StatusStopped       = "Stopped"
	StatusInfoRequested = "Info Requested"
	StatusClosed        = "Closed"
)

// ActionEntry is an immutable record of one workflow action taken on an
// alert. Entries are ordered by append position; Timestamp is RFC 3339 so
// the textual form sorts chronologically too.
type ActionEntry struct {
	ID        string  `json:"id"`
	Action    string  `json:"action"`
	Comment   *string `json:"comment"`
	Actor     string  `json:"actor"`
	Timestamp string  `json:"timestamp"`
}

// Alert is the mutable workflow entity tracking a compliance case.
//
// MatchedRule is an opaque snapshot of the rule that produced the alert, not
// a live foreign key; upstream matching populates it. Status must always
// equal the status implied by the most recent history entry, or the creation
// value while history is empty. History is append-only.
type Alert struct {
	BaseModel

	Company     string                           `gorm:"type:varchar(255);index" json:"company"`
	EventName   string                           `gorm:"type:varchar(255);index" json:"event_name"`
	MatchedRule datatypes.JSON                   `json:"matched_rule"`
	Severity    string                           `gorm:"type:varchar(32);index" json:"severity"`
	TATDays     int                              `gorm:"column:tat_days" json:"tat_days"`
	Status      string                           `gorm:"type:varchar(32);index" json:"status"`
	History     datatypes.JSONSlice[ActionEntry] `json:"history"`

	// Version guards the lifecycle update with a compare-and-swap so
	// concurrent actions can never erase each other's history entries.
	Version int64 `gorm:"not null;default:0" json:"-"`
}
