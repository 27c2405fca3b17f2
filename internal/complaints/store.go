package complaints

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adebayo-ak/carechat/internal/db"
)

// Store provides CRUD operations for complaints.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// NewNumber generates a short human-readable complaint reference.
func NewNumber() string {
	id := uuid.New().String()
	return "CMP-" + strings.ToUpper(id[:4])
}

// Create inserts a new complaint. Missing ID, number, priority and status are
// filled with defaults.
func (s *Store) Create(ctx context.Context, c Complaint) (*Complaint, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Number == "" {
		c.Number = NewNumber()
	}
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if c.Status == "" {
		c.Status = StatusPending
	}
	if c.Category == "" {
		c.Category = "general"
	}
	if c.Title == "" {
		return nil, fmt.Errorf("complaint title is required")
	}
	if c.SubmittedBy == "" {
		return nil, fmt.Errorf("complaint submitter is required")
	}

	var assignedTo sql.NullString
	if c.AssignedTo != "" {
		assignedTo = sql.NullString{String: c.AssignedTo, Valid: true}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO complaints (id, number, title, description, category, priority, status, submitted_by, assigned_to)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Number, c.Title, c.Description, c.Category,
		string(c.Priority), string(c.Status), c.SubmittedBy, assignedTo,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting complaint: %w", err)
	}

	return s.GetByID(ctx, c.ID)
}

// GetByID retrieves a single complaint.
func (s *Store) GetByID(ctx context.Context, id string) (*Complaint, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, number, title, description, category, priority, status, submitted_by, assigned_to, created_at, updated_at
		FROM complaints WHERE id = ?`, id)
	return scanComplaint(row)
}

// sortColumns maps ListFilter.SortBy values to actual columns.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"priority":   "priority",
	"status":     "status",
}

// List returns complaints matching the filter, newest-first unless the filter
// says otherwise.
func (s *Store) List(ctx context.Context, filter ListFilter) ([]Complaint, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.SubmittedBy != "" {
		clauses = append(clauses, "submitted_by = ?")
		args = append(args, filter.SubmittedBy)
	}
	if filter.AssignedTo != "" {
		clauses = append(clauses, "assigned_to = ?")
		args = append(args, filter.AssignedTo)
	}
	if filter.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, string(filter.Status))
	}
	if !filter.Since.IsZero() {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.Since.UTC().Format(time.DateTime))
	}

	query := "SELECT id, number, title, description, category, priority, status, submitted_by, assigned_to, created_at, updated_at FROM complaints"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortBy, order)

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying complaints: %w", err)
	}
	defer rows.Close()

	var result []Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

// Active returns the user's complaints that are still pending or in progress,
// newest-first.
func (s *Store) Active(ctx context.Context, userID string) ([]Complaint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, title, description, category, priority, status, submitted_by, assigned_to, created_at, updated_at
		FROM complaints
		WHERE submitted_by = ? AND status IN ('pending', 'in_progress')
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying active complaints: %w", err)
	}
	defer rows.Close()

	var result []Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

// Recent returns the user's complaints submitted within the given window,
// newest-first.
func (s *Store) Recent(ctx context.Context, userID string, window time.Duration) ([]Complaint, error) {
	return s.List(ctx, ListFilter{
		SubmittedBy: userID,
		Since:       time.Now().UTC().Add(-window),
	})
}

// MostRecent returns the user's single most recent complaint, or nil if they
// have none.
func (s *Store) MostRecent(ctx context.Context, userID string) (*Complaint, error) {
	all, err := s.List(ctx, ListFilter{SubmittedBy: userID, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[0], nil
}

// validStatuses is the set of accepted status transitions targets.
var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// UpdateStatus moves a complaint to a new status.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) error {
	if !validStatuses[status] {
		return fmt.Errorf("invalid status %q", status)
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE complaints SET status = ?, updated_at = datetime('now') WHERE id = ?`,
		string(status), id)
	if err != nil {
		return fmt.Errorf("updating complaint status: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("complaint %s not found", id)
	}
	return nil
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanComplaint(sc scanner) (*Complaint, error) {
	var (
		c                  Complaint
		priority, status   string
		assignedTo         sql.NullString
		createdAt, updated string
	)

	err := sc.Scan(&c.ID, &c.Number, &c.Title, &c.Description, &c.Category,
		&priority, &status, &c.SubmittedBy, &assignedTo, &createdAt, &updated)
	if err != nil {
		return nil, err
	}

	c.Priority = Priority(priority)
	c.Status = Status(status)
	if assignedTo.Valid {
		c.AssignedTo = assignedTo.String
	}
	c.CreatedAt = parseTimestamp(createdAt)
	c.UpdatedAt = parseTimestamp(updated)

	return &c, nil
}

func parseTimestamp(ts string) time.Time {
	if t, err := time.Parse(time.DateTime, ts); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t
	}
	return time.Time{}
}
