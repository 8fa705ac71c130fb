package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vpstudios/backlot/internal/repository"
)

// maxIDAttempts bounds regeneration when a generated id collides with a
// stored key. The 6-digit suffix makes collisions negligible in practice.
const maxIDAttempts = 10

// TransitionEvent describes a completed status transition.
type TransitionEvent struct {
	SubmissionID string
	From         Status
	To           Status
	At           time.Time
}

// TransitionHook is invoked after a status transition has been persisted.
type TransitionHook func(ctx context.Context, event TransitionEvent)

// Service handles submission business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	hooks  []TransitionHook
}

// NewService creates a new submission service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		newID:  NewID,
	}
}

// NewID generates a submission id of the form VP-<year>-<6-digit suffix>.
func NewID() string {
	return fmt.Sprintf("VP-%d-%06d", time.Now().UTC().Year(), rand.IntN(1000000))
}

// OnTransition registers a hook fired after each successful status transition.
// Hooks must be registered before the service starts handling requests.
func (s *Service) OnTransition(hook TransitionHook) {
	s.hooks = append(s.hooks, hook)
}

// Create persists a validated input as a new submission with a fresh id,
// status received and the current time as submission date. Id collisions
// trigger regeneration rather than failure.
func (s *Service) Create(ctx context.Context, in Input) (*Submission, error) {
	sub := &Submission{
		ProjectName:     in.ProjectName,
		BrandName:       in.BrandName,
		ProjectGoals:    in.ProjectGoals,
		PackageType:     in.PackageType,
		Timeline:        in.Timeline,
		AdditionalNotes: in.AdditionalNotes,
		Files:           in.Files,
		Status:          StatusReceived,
		SubmissionDate:  s.now().UTC(),
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		sub.ID = s.newID()
		err := s.repo.Create(ctx, sub)
		if err == nil {
			s.logger.Info("submission created", "id", sub.ID, "package", sub.PackageType)
			return sub, nil
		}
		if errors.Is(err, repository.ErrDuplicateID) {
			continue
		}
		return nil, fmt.Errorf("creating submission: %w", err)
	}
	return nil, ErrIDExhausted
}

// Get fetches a submission by id.
func (s *Service) Get(ctx context.Context, id string) (*Submission, error) {
	sub, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("getting submission: %w", err)
	}
	return sub, nil
}

// List returns all submissions ordered by submission date descending.
func (s *Service) List(ctx context.Context) ([]Submission, error) {
	return s.repo.List(ctx)
}

// ListByStatus returns submissions with the given status, newest first.
func (s *Service) ListByStatus(ctx context.Context, status Status) ([]Submission, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListByStatus(ctx, status)
}

// ListByPackage returns submissions with the given package type, newest first.
func (s *Service) ListByPackage(ctx context.Context, packageType string) ([]Submission, error) {
	return s.repo.ListByPackage(ctx, packageType)
}

// UpdateStatus applies a workflow transition and fires registered hooks.
// The underlying update is conditional on the current status, so a lost race
// never re-applies or skips a transition.
func (s *Service) UpdateStatus(ctx context.Context, id string, to Status) (*Submission, error) {
	if !ValidStatus(to) {
		return nil, ErrInvalidStatus
	}

	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	from := sub.Status
	if err := ValidateTransition(from, to); err != nil {
		return nil, err
	}

	changed, err := s.repo.UpdateStatus(ctx, id, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("updating submission status: %w", err)
	}
	if !changed {
		// Another caller moved the submission since we read it.
		return nil, ErrIllegalTransition
	}

	sub.Status = to
	event := TransitionEvent{SubmissionID: id, From: from, To: to, At: s.now().UTC()}
	for _, hook := range s.hooks {
		hook(ctx, event)
	}
	s.logger.Info("submission status updated", "id", id, "from", from, "to", to)
	return sub, nil
}
