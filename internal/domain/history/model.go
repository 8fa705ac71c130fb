package history

import "time"

// Entry records a single status transition of a submission.
type Entry struct {
	ID           int64     `json:"id"`
	SubmissionID string    `json:"submissionId"`
	FromStatus   string    `json:"fromStatus"`
	ToStatus     string    `json:"toStatus"`
	ChangedBy    string    `json:"changedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
