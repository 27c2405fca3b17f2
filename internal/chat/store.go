package chat

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adebayo-ak/carechat/internal/db"
)

// SessionStore persists finished chat sessions and their transcripts.
type SessionStore struct {
	db *db.DB
}

// NewSessionStore creates a SessionStore backed by the given database.
func NewSessionStore(database *db.DB) *SessionStore {
	return &SessionStore{db: database}
}

// SaveSession writes the session envelope and its transcript in one
// transaction.
func (s *SessionStore) SaveSession(ctx context.Context, rec SessionRecord) error {
	if rec.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if rec.Status == "" {
		rec.Status = "closed"
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var complaintID sql.NullString
	if rec.ComplaintID != "" {
		complaintID = sql.NullString{String: rec.ComplaintID, Valid: true}
	}
	var endedAt sql.NullString
	if !rec.EndedAt.IsZero() {
		endedAt = sql.NullString{String: rec.EndedAt.UTC().Format(time.DateTime), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO chat_sessions (id, user_id, complaint_id, status, resolution, started_at, ended_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, complaintID, rec.Status, rec.Resolution,
		rec.StartedAt.UTC().Format(time.DateTime), endedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting chat session: %w", err)
	}

	for i, m := range rec.Messages {
		id := m.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO chat_messages (id, session_id, seq, origin, content, intent, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, rec.ID, i, string(m.Origin), m.Text, m.Intent,
			m.Timestamp.UTC().Format(time.DateTime),
		)
		if err != nil {
			return fmt.Errorf("inserting chat message: %w", err)
		}
	}

	return tx.Commit()
}

// GetSession loads a persisted session envelope.
func (s *SessionStore) GetSession(ctx context.Context, id string) (*SessionRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, complaint_id, status, resolution, started_at, ended_at
		FROM chat_sessions WHERE id = ?`, id)

	var (
		rec         SessionRecord
		complaintID sql.NullString
		startedAt   string
		endedAt     sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.UserID, &complaintID, &rec.Status, &rec.Resolution, &startedAt, &endedAt)
	if err != nil {
		return nil, err
	}
	if complaintID.Valid {
		rec.ComplaintID = complaintID.String
	}
	if t, err := time.Parse(time.DateTime, startedAt); err == nil {
		rec.StartedAt = t
	}
	if endedAt.Valid {
		if t, err := time.Parse(time.DateTime, endedAt.String); err == nil {
			rec.EndedAt = t
		}
	}

	msgs, err := s.Messages(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Messages = msgs
	return &rec, nil
}

// Messages returns a persisted session's transcript in order.
func (s *SessionStore) Messages(ctx context.Context, sessionID string) ([]Message, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, origin, content, intent, created_at
		FROM chat_messages WHERE session_id = ? ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var result []Message
	for rows.Next() {
		var (
			m      Message
			origin string
			ts     string
		)
		if err := rows.Scan(&m.ID, &origin, &m.Text, &m.Intent, &ts); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Origin = Origin(origin)
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			m.Timestamp = t
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
