package domain

import (
	"strings"
	"time"
)

// Notice is a notice-board record as seen by the client. The service owns
// the record; the client only reads it and changes its status.
type Notice struct {
	ID              string
	Title           string
	Type            string
	TargetRecipient string
	EmployeeID      string
	EmployeeName    string
	Position        string
	Body            string
	// PublishDate is date-only ("2006-01-02"), empty when the service
	// omitted it. Any time-of-day on the wire is truncated.
	PublishDate   string
	AttachmentURL string
	Status        BackendStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DisplayStatus returns the operator label for this notice's status.
func (n *Notice) DisplayStatus() UIStatus {
	return DisplayStatus(n.Status)
}

// NoticeTypes is the advisory category list offered in the create form.
// The client does not enforce it beyond offering the selection.
var NoticeTypes = []string{
	"Warning/Disciplinary",
	"Performance Improvement",
	"Policy Update",
	"General Announcement",
	"Event",
}

// TargetKinds are the audience kinds offered in the create form.
var TargetKinds = []string{"Individual", "Department"}

// Fallback identity applied when the operator leaves the employee fields
// blank on create. Application is an explicit, logged step; see
// service.CreateNotice.
const (
	FallbackEmployeeID   = "N/A"
	FallbackEmployeeName = "All Staff"
	FallbackPosition     = "N/A"
)

// NormalizeDate truncates a wire date to its date-only form. Accepts
// RFC3339 timestamps and bare "2006-01-02" dates; anything else is
// returned trimmed and unchanged.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) >= 10 {
		candidate := s[:10]
		if _, err := time.Parse("2006-01-02", candidate); err == nil {
			return candidate
		}
	}
	return s
}

// ValidDate reports whether s is a well-formed "2006-01-02" date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
