package adherence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/medication-reminder/internal/model"
)

var ErrNoLogsFound = errors.New("no log entries found")

// Repository provides methods to interact with the append-only logs table.
// The reminder core only ever reads from it; writes come from the logging API.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new adherence log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateLog appends a new log entry and returns its ID.
func (r *Repository) CreateLog(ctx context.Context, entry model.LogEntry) (uuid.UUID, error) {
	query := `
		INSERT INTO logs (
		    user_id, action, timestamp
		) VALUES ($1, $2, $3)
		RETURNING id;
    `

	err := r.db.QueryRowContext(
		ctx, query, entry.UserID, entry.Action, entry.Timestamp,
	).Scan(&entry.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create log entry: %w", err)
	}

	return entry.ID, nil
}

// HasActionSince reports whether the user logged the given action at or
// after the given instant.
func (r *Repository) HasActionSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM logs
		    WHERE user_id = $1 AND action = $2 AND timestamp >= $3
		);
    `

	var exists bool
	err := r.db.QueryRowContext(ctx, query, userID, action, since).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to query log entries: %w", err)
	}

	return exists, nil
}

// CountActionSince returns how many times the user logged the given action
// at or after the given instant. The dashboard uses it for water progress.
func (r *Repository) CountActionSince(ctx context.Context, userID uuid.UUID, action string, since time.Time) (int, error) {
	query := `
		SELECT count(*) FROM logs
		WHERE user_id = $1 AND action = $2 AND timestamp >= $3;
    `

	var count int
	err := r.db.QueryRowContext(ctx, query, userID, action, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count log entries: %w", err)
	}

	return count, nil
}

// ListLogsByUser retrieves all log entries for a user, newest first.
func (r *Repository) ListLogsByUser(ctx context.Context, userID uuid.UUID) ([]model.LogEntry, error) {
	query := `
		SELECT id, user_id, action, timestamp
		FROM logs
		WHERE user_id = $1
		ORDER BY timestamp DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	defer rows.Close()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Timestamp); err != nil {
			return nil, err
		}

		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, ErrNoLogsFound
	}

	return entries, nil
}
