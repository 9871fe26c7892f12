package feed

import (
	"time"
)

type EntryType string

const (
	TypeInfo     EntryType = "info"
	TypeWarning  EntryType = "warning"
	TypeSuccess  EntryType = "success"
	TypeError    EntryType = "error"
	TypeRequest  EntryType = "request"
	TypeLowStock EntryType = "low_stock"
)

type RequestStatus string

const (
	StatusNone     RequestStatus = ""
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Candidate is a display candidate for the branch notification feed. It may
// come from the notifications table, the pending requests list, or the
// request history list; the merger collapses candidates sharing a derived
// identity key into one entry.
type Candidate struct {
	ID           string        `json:"id"`
	Type         EntryType     `json:"type"`
	Title        string        `json:"title,omitempty"`
	Message      string        `json:"message"`
	IsRead       bool          `json:"is_read"`
	CreatedAt    time.Time     `json:"created_at"`
	RawCreatedAt string        `json:"-"`
	RequestID    int64         `json:"request_id,omitempty"`
	ReferenceID  int64         `json:"reference_id,omitempty"`
	Status       RequestStatus `json:"request_status,omitempty"`
}

// Definitive reports whether the candidate carries a resolved request status.
// Definitive candidates win over non-definitive ones for the same key.
func (c Candidate) Definitive() bool {
	return c.Status == StatusApproved || c.Status == StatusRejected
}
