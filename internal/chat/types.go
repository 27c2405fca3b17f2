package chat

import (
	"context"
	"sync"
	"time"

	"github.com/adebayo-ak/carechat/internal/complaints"
	"github.com/adebayo-ak/carechat/internal/router"
)

// Origin identifies who produced a transcript line.
type Origin string

const (
	OriginUser Origin = "user"
	OriginBot  Origin = "bot"
)

// Message is one line of chat history. Immutable once created; lives for the
// duration of the session.
type Message struct {
	ID        string    `json:"id"`
	Origin    Origin    `json:"origin"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds all per-conversation state. Nothing here is shared across
// sessions; the whole struct is discarded on close.
type Session struct {
	ID                    string
	UserID                string
	State                 router.ConversationState
	Flags                 router.SessionFlags
	PrefetchedComplaintID string
	ComplaintID           string // complaint created during this session, if any
	Transcript            []Message
	PendingDetail         []string // user lines accumulated in complaint mode
	StartedAt             time.Time

	// mu serialises message handling: one inbound message is processed to
	// completion before the next is accepted (per session).
	mu sync.Mutex
}

// Reply is what the chat layer returns to the caller for one inbound message.
type Reply struct {
	SessionID string                   `json:"session_id"`
	Intent    router.Intent            `json:"intent"`
	State     router.ConversationState `json:"state"`
	Text      string                   `json:"text"`
}

// ComplaintService is the complaint-store collaborator.
type ComplaintService interface {
	Create(ctx context.Context, c complaints.Complaint) (*complaints.Complaint, error)
	GetByID(ctx context.Context, id string) (*complaints.Complaint, error)
	MostRecent(ctx context.Context, userID string) (*complaints.Complaint, error)
	Active(ctx context.Context, userID string) ([]complaints.Complaint, error)
	Recent(ctx context.Context, userID string, window time.Duration) ([]complaints.Complaint, error)
}

// ReminderSender dispatches a reminder for a complaint.
type ReminderSender interface {
	Send(ctx context.Context, complaintID string) error
}

// TranscriptStore persists a finished session.
type TranscriptStore interface {
	SaveSession(ctx context.Context, rec SessionRecord) error
}

// SessionRecord is the persistence envelope for a finished chat session.
type SessionRecord struct {
	ID          string
	UserID      string
	ComplaintID string
	Status      string // open, closed, abandoned
	Resolution  string
	StartedAt   time.Time
	EndedAt     time.Time
	Messages    []Message
}
