package submission

import "context"

// Repository provides persistence for submissions. Implementations must make
// Create atomic with respect to concurrent creates of the same id, returning
// repository.ErrDuplicateID on collision so the caller can regenerate.
type Repository interface {
	Create(ctx context.Context, sub *Submission) error
	Get(ctx context.Context, id string) (*Submission, error)
	List(ctx context.Context) ([]Submission, error)
	ListByStatus(ctx context.Context, status Status) ([]Submission, error)
	ListByPackage(ctx context.Context, packageType string) ([]Submission, error)
	// UpdateStatus applies the transition only if the stored status still equals
	// from, reporting whether a row changed.
	UpdateStatus(ctx context.Context, id string, from, to Status) (bool, error)
}
