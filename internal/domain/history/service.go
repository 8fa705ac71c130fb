package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidEntry indicates a history entry is missing required fields.
var ErrInvalidEntry = errors.New("invalid history entry")

// Service handles transition history operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new history service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Record appends a transition entry, stamping the current time if missing.
func (s *Service) Record(ctx context.Context, entry *Entry) error {
	if entry == nil || entry.SubmissionID == "" || entry.ToStatus == "" {
		return ErrInvalidEntry
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("recording transition: %w", err)
	}
	return nil
}

// ForSubmission lists the transition entries of one submission, oldest first.
func (s *Service) ForSubmission(ctx context.Context, submissionID string) ([]Entry, error) {
	return s.repo.ListBySubmission(ctx, submissionID)
}
