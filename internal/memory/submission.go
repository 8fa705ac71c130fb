// Package memory provides map-backed stores, used in tests and for running
// the server without a database file.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/repository"
)

// SubmissionStore implements repository.SubmissionRepository in memory.
type SubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]submission.Submission
}

// NewSubmissionStore creates an empty in-memory submission store.
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{submissions: make(map[string]submission.Submission)}
}

// Create stores a new submission. The existence check and insert happen under
// one lock, so concurrent creates with the same id cannot both succeed.
func (s *SubmissionStore) Create(_ context.Context, sub *submission.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.submissions[sub.ID]; exists {
		return repository.ErrDuplicateID
	}
	s.submissions[sub.ID] = *sub
	return nil
}

// Get retrieves a submission by id.
func (s *SubmissionStore) Get(_ context.Context, id string) (*submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &sub, nil
}

// List returns all submissions ordered by submission date descending.
func (s *SubmissionStore) List(_ context.Context) ([]submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(submission.Submission) bool { return true }), nil
}

// ListByStatus returns submissions with the given status, newest first.
func (s *SubmissionStore) ListByStatus(_ context.Context, status submission.Status) ([]submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(sub submission.Submission) bool { return sub.Status == status }), nil
}

// ListByPackage returns submissions with the given package type, newest first.
func (s *SubmissionStore) ListByPackage(_ context.Context, packageType string) ([]submission.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(sub submission.Submission) bool { return sub.PackageType == packageType }), nil
}

// UpdateStatus applies a conditional status change, reporting whether the
// stored status matched from and was updated.
func (s *SubmissionStore) UpdateStatus(_ context.Context, id string, from, to submission.Status) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	if sub.Status != from {
		return false, nil
	}
	sub.Status = to
	s.submissions[id] = sub
	return true, nil
}

func (s *SubmissionStore) collect(keep func(submission.Submission) bool) []submission.Submission {
	var subs []submission.Submission
	for _, sub := range s.submissions {
		if keep(sub) {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].SubmissionDate.After(subs[j].SubmissionDate)
	})
	return subs
}
