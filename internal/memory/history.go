package memory

import (
	"context"
	"sync"

	"github.com/vpstudios/backlot/internal/domain/history"
)

// HistoryStore implements repository.HistoryRepository in memory.
type HistoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[string][]history.Entry
}

// NewHistoryStore creates an empty in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{nextID: 1, entries: make(map[string][]history.Entry)}
}

// Log appends a transition entry.
func (s *HistoryStore) Log(_ context.Context, entry *history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = s.nextID
	s.nextID++
	s.entries[entry.SubmissionID] = append(s.entries[entry.SubmissionID], *entry)
	return nil
}

// ListBySubmission returns a submission's transition entries, oldest first.
func (s *HistoryStore) ListBySubmission(_ context.Context, submissionID string) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.entries[submissionID]
	out := make([]history.Entry, len(entries))
	copy(out, entries)
	return out, nil
}
