package repository

import (
	"context"

	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/domain/submission"
)

// SubmissionRepository manages submission persistence
type SubmissionRepository interface {
	Create(ctx context.Context, sub *submission.Submission) error
	Get(ctx context.Context, id string) (*submission.Submission, error)
	List(ctx context.Context) ([]submission.Submission, error)
	ListByStatus(ctx context.Context, status submission.Status) ([]submission.Submission, error)
	ListByPackage(ctx context.Context, packageType string) ([]submission.Submission, error)
	UpdateStatus(ctx context.Context, id string, from, to submission.Status) (bool, error)
}

// HistoryRepository manages transition history persistence
type HistoryRepository interface {
	Log(ctx context.Context, entry *history.Entry) error
	ListBySubmission(ctx context.Context, submissionID string) ([]history.Entry, error)
}

// AssetRepository manages marketplace asset persistence
type AssetRepository interface {
	Create(ctx context.Context, a *asset.Asset) error
	Get(ctx context.Context, id string) (*asset.Asset, error)
	List(ctx context.Context) ([]asset.Asset, error)
	ListByCategory(ctx context.Context, category string) ([]asset.Asset, error)
	ListFeatured(ctx context.Context) ([]asset.Asset, error)
}

// CreditsRepository manages credit balance persistence
type CreditsRepository interface {
	Create(ctx context.Context, b *credits.Balance) error
	GetByEmail(ctx context.Context, email string) (*credits.Balance, error)
	Update(ctx context.Context, b *credits.Balance) error
}
