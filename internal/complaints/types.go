package complaints

import "time"

// Status is the lifecycle state of a complaint.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

// Priority indicates how urgently a complaint should be handled.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Complaint is a single customer-care complaint record.
type Complaint struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"` // short human reference, e.g. CMP-1A3E
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	SubmittedBy string    `json:"submitted_by"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListFilter controls which complaints are returned by List. The zero value
// lists everything newest-first.
type ListFilter struct {
	SubmittedBy string
	AssignedTo  string
	Status      Status
	Since       time.Time
	SortBy      string // created_at (default), updated_at, priority, status
	SortOrder   string // desc (default) or asc
	Limit       int
	Offset      int
}
