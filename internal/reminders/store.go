package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adebayo-ak/carechat/internal/db"
)

// Store provides persistence for reminders.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new reminder. If r.ID is empty a UUID is generated.
func (s *Store) Create(ctx context.Context, r Reminder) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Channel == "" {
		r.Channel = ChannelChat
	}

	delivered := 0
	if r.Delivered {
		delivered = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reminders (id, complaint_id, channel, delivered)
		VALUES (?, ?, ?, ?)`,
		r.ID, r.ComplaintID, string(r.Channel), delivered,
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

// List returns all reminders, newest-first. If complaintID is non-empty only
// that complaint's reminders are returned.
func (s *Store) List(ctx context.Context, complaintID string) ([]Reminder, error) {
	query := "SELECT id, complaint_id, channel, delivered, created_at FROM reminders"
	var args []any
	if complaintID != "" {
		query += " WHERE complaint_id = ?"
		args = append(args, complaintID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var result []Reminder
	for rows.Next() {
		var (
			r         Reminder
			channel   string
			delivered int
			ts        string
		)
		if err := rows.Scan(&r.ID, &r.ComplaintID, &channel, &delivered, &ts); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		r.Channel = Channel(channel)
		r.Delivered = delivered != 0
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			r.CreatedAt = t
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// GetPending returns all undelivered reminders, oldest-first so they drain in
// submission order.
func (s *Store) GetPending(ctx context.Context) ([]Reminder, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, complaint_id, channel, delivered, created_at
		FROM reminders WHERE delivered = 0 ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying pending reminders: %w", err)
	}
	defer rows.Close()

	var result []Reminder
	for rows.Next() {
		var (
			r         Reminder
			channel   string
			delivered int
			ts        string
		)
		if err := rows.Scan(&r.ID, &r.ComplaintID, &channel, &delivered, &ts); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		r.Channel = Channel(channel)
		r.Delivered = delivered != 0
		if t, err := time.Parse(time.DateTime, ts); err == nil {
			r.CreatedAt = t
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// MarkDelivered sets delivered=1 for the given reminder.
func (s *Store) MarkDelivered(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE reminders SET delivered = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("marking reminder delivered: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("reminder %s not found", id)
	}
	return nil
}
