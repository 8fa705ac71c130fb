package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/repository"
)

// SubmissionRepository implements repository.SubmissionRepository for SQLite
type SubmissionRepository struct {
	db *DB
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(db *DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `
	id, project_name, brand_name, project_goals, package_type,
	timeline, additional_notes, files, status, submission_date
`

// Create inserts a new submission. The primary key constraint makes the
// uniqueness check atomic across concurrent creates; collisions surface as
// repository.ErrDuplicateID.
func (r *SubmissionRepository) Create(ctx context.Context, sub *submission.Submission) error {
	files, err := json.Marshal(sub.Files)
	if err != nil {
		return fmt.Errorf("failed to encode files: %w", err)
	}

	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		sub.ID,
		sub.ProjectName,
		nullable(sub.BrandName),
		sub.ProjectGoals,
		sub.PackageType,
		nullable(sub.Timeline),
		nullable(sub.AdditionalNotes),
		string(files),
		sub.Status,
		sub.SubmissionDate,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateID
		}
		return fmt.Errorf("failed to create submission: %w", err)
	}

	return nil
}

// Get retrieves a submission by ID
func (r *SubmissionRepository) Get(ctx context.Context, id string) (*submission.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`

	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return sub, nil
}

// List returns all submissions ordered by submission date descending
func (r *SubmissionRepository) List(ctx context.Context) ([]submission.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ORDER BY submission_date DESC`
	return r.queryList(ctx, query)
}

// ListByStatus returns submissions with the given status, newest first
func (r *SubmissionRepository) ListByStatus(ctx context.Context, status submission.Status) ([]submission.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE status = ? ORDER BY submission_date DESC`
	return r.queryList(ctx, query, status)
}

// ListByPackage returns submissions with the given package type, newest first
func (r *SubmissionRepository) ListByPackage(ctx context.Context, packageType string) ([]submission.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE package_type = ? ORDER BY submission_date DESC`
	return r.queryList(ctx, query, packageType)
}

// UpdateStatus moves a submission from one status to another. The update is
// conditional on the current status so concurrent transitions can't double
// apply; it reports whether a row changed.
func (r *SubmissionRepository) UpdateStatus(ctx context.Context, id string, from, to submission.Status) (bool, error) {
	query := `UPDATE submissions SET status = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update submission status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		var exists bool
		checkQuery := `SELECT EXISTS(SELECT 1 FROM submissions WHERE id = ?)`
		if err := r.db.QueryRowContext(ctx, checkQuery, id).Scan(&exists); err != nil {
			return false, fmt.Errorf("failed to check submission existence: %w", err)
		}
		if !exists {
			return false, repository.ErrNotFound
		}
		// Submission exists but status moved on - nothing changed.
		return false, nil
	}

	return true, nil
}

func (r *SubmissionRepository) queryList(ctx context.Context, query string, args ...any) ([]submission.Submission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var subs []submission.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, *sub)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return subs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*submission.Submission, error) {
	var sub submission.Submission
	var brandName, timeline, notes sql.NullString
	var files string

	err := row.Scan(
		&sub.ID,
		&sub.ProjectName,
		&brandName,
		&sub.ProjectGoals,
		&sub.PackageType,
		&timeline,
		&notes,
		&files,
		&sub.Status,
		&sub.SubmissionDate,
	)
	if err != nil {
		return nil, err
	}

	sub.BrandName = brandName.String
	sub.Timeline = timeline.String
	sub.AdditionalNotes = notes.String
	if err := json.Unmarshal([]byte(files), &sub.Files); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}

	return &sub, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
