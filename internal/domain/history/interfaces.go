package history

import "context"

// Repository provides persistence for transition history entries.
type Repository interface {
	Log(ctx context.Context, entry *Entry) error
	ListBySubmission(ctx context.Context, submissionID string) ([]Entry, error)
}
