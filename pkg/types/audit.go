package types

import "time"

// Audit actions recorded by the session store.
const (
	ActionFileUpload   = "File Upload"
	ActionQRGenerated  = "QR Generated"
	ActionRecordAccess = "Record Access"
)

// AuditEntry is an immutable record of a tracked action. Simulated marks
// entries whose IP and location were fabricated rather than observed.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Actor     string    `json:"actor"`
	IP        string    `json:"ip"`
	Location  *string   `json:"location,omitempty"`
	Simulated bool      `json:"simulated"`
}
