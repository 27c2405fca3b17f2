package chat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adebayo-ak/carechat/internal/complaints"
	"github.com/adebayo-ak/carechat/internal/router"
)

// recentWindow is how far back a complaint still counts as "recent" for the
// opening greeting.
const recentWindow = 24 * time.Hour

// ErrEmptyMessage is returned for blank input; empty messages never reach the
// classifier.
var ErrEmptyMessage = fmt.Errorf("message is empty")

// ErrSessionNotFound is returned when a session ID is unknown or already closed.
var ErrSessionNotFound = fmt.Errorf("session not found")

// Service orchestrates chat sessions: it holds the live sessions, runs the
// intent router over inbound messages, and performs the collaborator side
// effects each intent calls for. Collaborator failures degrade to canned
// fallback replies; the conversation never dead-ends on a backend error.
type Service struct {
	router      *router.Router
	complaints  ComplaintService
	reminders   ReminderSender
	transcripts TranscriptStore

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewService creates a chat Service.
func NewService(rt *router.Router, cs ComplaintService, rs ReminderSender, ts TranscriptStore) *Service {
	return &Service{
		router:      rt,
		complaints:  cs,
		reminders:   rs,
		transcripts: ts,
		sessions:    make(map[string]*Session),
	}
}

// Open starts a new chat session for the user. It fetches the user's complaint
// history once, selects the greeting, and seeds the conversation state. A
// failed history lookup falls back to the default greeting rather than
// failing the open.
func (s *Service) Open(ctx context.Context, userID string) (*Session, Reply) {
	snapshot := s.historySnapshot(ctx, userID)
	greeting := router.SelectGreeting(snapshot)

	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		State:     greeting.State,
		StartedAt: time.Now().UTC(),
	}

	var data router.TemplateData
	if greeting.Complaint != nil {
		sess.PrefetchedComplaintID = greeting.Complaint.ID
		sess.Flags.HasPrefetchedComplaintID = true
		data = router.TemplateData{
			ComplaintTitle:  greeting.Complaint.Title,
			ComplaintNumber: greeting.Complaint.Number,
		}
	}

	text := router.Render(greeting.Key, data)
	sess.Transcript = append(sess.Transcript, newMessage(OriginBot, text, ""))

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, Reply{
		SessionID: sess.ID,
		State:     sess.State,
		Text:      text,
	}
}

// historySnapshot builds the greeting context from the complaint store.
func (s *Service) historySnapshot(ctx context.Context, userID string) router.HistorySnapshot {
	var snapshot router.HistorySnapshot

	active, err := s.complaints.Active(ctx, userID)
	if err != nil {
		log.Printf("chat: fetching active complaints for %s: %v", userID, err)
		return snapshot
	}
	recent, err := s.complaints.Recent(ctx, userID, recentWindow)
	if err != nil {
		log.Printf("chat: fetching recent complaints for %s: %v", userID, err)
		return snapshot
	}

	snapshot.Active = toRefs(active)
	snapshot.Recent = toRefs(recent)
	return snapshot
}

// Handle processes one inbound message for the session. Messages are handled
// strictly one at a time per session.
func (s *Service) Handle(ctx context.Context, sessionID, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{}, ErrEmptyMessage
	}

	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return Reply{}, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	c := s.router.Classify(text, sess.State, sess.Flags)

	sess.Transcript = append(sess.Transcript, newMessage(OriginUser, text, string(c.Intent)))

	sess.State = c.NextState
	if c.EnterComplaintMode {
		sess.Flags.ComplaintMode = true
	}

	replyText := s.dispatch(ctx, sess, text, c)
	sess.Transcript = append(sess.Transcript, newMessage(OriginBot, replyText, ""))

	return Reply{
		SessionID: sess.ID,
		Intent:    c.Intent,
		State:     sess.State,
		Text:      replyText,
	}, nil
}

// dispatch performs the collaborator side effects for a classification and
// produces the reply text. Classification itself never touches a
// collaborator; everything with I/O lives here.
func (s *Service) dispatch(ctx context.Context, sess *Session, text string, c router.Classification) string {
	switch c.Intent {
	case router.IntentSubmitComplaint:
		return s.submitComplaint(ctx, sess)

	case router.IntentFeedbackCheck:
		return s.checkStatus(ctx, sess)

	case router.IntentStartNew:
		// A fresh complaint detaches the session from the old one.
		sess.PrefetchedComplaintID = ""
		sess.Flags.HasPrefetchedComplaintID = false
		sess.PendingDetail = nil
		return router.Render(c.ResponseKey, router.TemplateData{})

	case router.IntentComplaintDetail:
		sess.PendingDetail = append(sess.PendingDetail, text)
		return router.Render(c.ResponseKey, router.TemplateData{})

	default:
		return router.Render(c.ResponseKey, router.TemplateData{})
	}
}

// submitComplaint assembles the accumulated detail into a complaint record.
func (s *Service) submitComplaint(ctx context.Context, sess *Session) string {
	if len(sess.PendingDetail) == 0 {
		return router.Render(router.TemplateNothingToSubmit, router.TemplateData{})
	}

	description := strings.Join(sess.PendingDetail, "\n")
	created, err := s.complaints.Create(ctx, complaints.Complaint{
		Title:       titleFromDetail(sess.PendingDetail[0]),
		Description: description,
		Category:    "customer_care",
		SubmittedBy: sess.UserID,
	})
	if err != nil {
		log.Printf("chat: submitting complaint for session %s: %v", sess.ID, err)
		return router.Render(router.TemplateSubmitFailed, router.TemplateData{})
	}

	sess.ComplaintID = created.ID
	sess.PendingDetail = nil
	sess.Flags.ComplaintMode = false
	sess.State = router.StateIdle

	return router.Render(router.TemplateSubmitConfirmed, router.TemplateData{
		ComplaintTitle:  created.Title,
		ComplaintNumber: created.Number,
	})
}

// checkStatus resolves the target complaint, nudges the handling team, and
// answers with the status-specific template.
func (s *Service) checkStatus(ctx context.Context, sess *Session) string {
	var (
		target *complaints.Complaint
		err    error
	)
	if sess.PrefetchedComplaintID != "" {
		target, err = s.complaints.GetByID(ctx, sess.PrefetchedComplaintID)
	} else {
		target, err = s.complaints.MostRecent(ctx, sess.UserID)
	}
	if err != nil {
		log.Printf("chat: resolving complaint for session %s: %v", sess.ID, err)
		return router.Render(router.TemplateStatusUnavailable, router.TemplateData{})
	}
	if target == nil {
		return router.Render(router.TemplateNoComplaintFound, router.TemplateData{})
	}

	// Reminder delivery is best-effort; the status answer stands either way.
	if err := s.reminders.Send(ctx, target.ID); err != nil {
		log.Printf("chat: sending reminder for complaint %s: %v", target.ID, err)
	}

	return router.Render(router.StatusTemplate(string(target.Status)), router.TemplateData{
		ComplaintTitle:  target.Title,
		ComplaintNumber: target.Number,
	})
}

// Get returns a live session by ID.
func (s *Service) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// Close persists the session transcript and discards the in-memory session.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if ok {
		delete(s.sessions, sessionID)
	}
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	rec := SessionRecord{
		ID:          sess.ID,
		UserID:      sess.UserID,
		ComplaintID: sess.ComplaintID,
		Status:      "closed",
		StartedAt:   sess.StartedAt,
		EndedAt:     time.Now().UTC(),
		Messages:    sess.Transcript,
	}
	if err := s.transcripts.SaveSession(ctx, rec); err != nil {
		return fmt.Errorf("saving session transcript: %w", err)
	}
	return nil
}

func newMessage(origin Origin, text, intent string) Message {
	return Message{
		ID:        uuid.New().String(),
		Origin:    origin,
		Text:      text,
		Intent:    intent,
		Timestamp: time.Now().UTC(),
	}
}

// titleFromDetail derives a complaint title from the first detail line.
func titleFromDetail(line string) string {
	const maxTitle = 80
	line = strings.TrimSpace(line)
	if len(line) > maxTitle {
		return line[:maxTitle-3] + "..."
	}
	return line
}

func toRefs(list []complaints.Complaint) []router.ComplaintRef {
	refs := make([]router.ComplaintRef, 0, len(list))
	for _, c := range list {
		refs = append(refs, router.ComplaintRef{
			ID:          c.ID,
			Number:      c.Number,
			Title:       c.Title,
			Status:      string(c.Status),
			SubmittedAt: c.CreatedAt,
		})
	}
	return refs
}
