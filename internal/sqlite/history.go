package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/repository"
)

// HistoryRepository implements repository.HistoryRepository for SQLite
type HistoryRepository struct {
	db *DB
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Log appends a transition entry
func (r *HistoryRepository) Log(ctx context.Context, entry *history.Entry) error {
	query := `
		INSERT INTO status_history (submission_id, from_status, to_status, changed_by, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.SubmissionID,
		entry.FromStatus,
		entry.ToStatus,
		nullable(entry.ChangedBy),
		entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrNotFound
		}
		return fmt.Errorf("failed to log transition: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = id
	}
	return nil
}

// ListBySubmission returns a submission's transition entries, oldest first
func (r *HistoryRepository) ListBySubmission(ctx context.Context, submissionID string) ([]history.Entry, error) {
	query := `
		SELECT id, submission_id, from_status, to_status, changed_by, created_at
		FROM status_history
		WHERE submission_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, submissionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []history.Entry
	for rows.Next() {
		var entry history.Entry
		var changedBy sql.NullString
		err := rows.Scan(
			&entry.ID,
			&entry.SubmissionID,
			&entry.FromStatus,
			&entry.ToStatus,
			&changedBy,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.ChangedBy = changedBy.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}
