package domain

import "time"

// AuditLogEntry is one append-only line of the audit trail. The core only
// writes these; readers are the admin screens.
type AuditLogEntry struct {
	EntryID  string    `json:"entryID"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Table    *string   `json:"table,omitempty"`
	RecordID *string   `json:"recordID,omitempty"`
	Detail   *string   `json:"detail,omitempty"`
	LoggedAt time.Time `json:"loggedAt"`
}
