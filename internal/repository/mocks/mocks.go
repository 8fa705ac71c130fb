package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/domain/history"
	"github.com/vpstudios/backlot/internal/domain/submission"
)

// SubmissionRepository is a mock for repository.SubmissionRepository.
type SubmissionRepository struct {
	mock.Mock
}

func (m *SubmissionRepository) Create(ctx context.Context, sub *submission.Submission) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *SubmissionRepository) Get(ctx context.Context, id string) (*submission.Submission, error) {
	args := m.Called(ctx, id)
	if sub, ok := args.Get(0).(*submission.Submission); ok {
		return sub, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionRepository) List(ctx context.Context) ([]submission.Submission, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]submission.Submission); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionRepository) ListByStatus(ctx context.Context, status submission.Status) ([]submission.Submission, error) {
	args := m.Called(ctx, status)
	if list, ok := args.Get(0).([]submission.Submission); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionRepository) ListByPackage(ctx context.Context, packageType string) ([]submission.Submission, error) {
	args := m.Called(ctx, packageType)
	if list, ok := args.Get(0).([]submission.Submission); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SubmissionRepository) UpdateStatus(ctx context.Context, id string, from, to submission.Status) (bool, error) {
	args := m.Called(ctx, id, from, to)
	return args.Bool(0), args.Error(1)
}

// HistoryRepository is a mock for repository.HistoryRepository.
type HistoryRepository struct {
	mock.Mock
}

func (m *HistoryRepository) Log(ctx context.Context, entry *history.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *HistoryRepository) ListBySubmission(ctx context.Context, submissionID string) ([]history.Entry, error) {
	args := m.Called(ctx, submissionID)
	if list, ok := args.Get(0).([]history.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AssetRepository is a mock for repository.AssetRepository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*asset.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) ListByCategory(ctx context.Context, category string) ([]asset.Asset, error) {
	args := m.Called(ctx, category)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) ListFeatured(ctx context.Context) ([]asset.Asset, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]asset.Asset); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// CreditsRepository is a mock for repository.CreditsRepository.
type CreditsRepository struct {
	mock.Mock
}

func (m *CreditsRepository) Create(ctx context.Context, b *credits.Balance) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *CreditsRepository) GetByEmail(ctx context.Context, email string) (*credits.Balance, error) {
	args := m.Called(ctx, email)
	if b, ok := args.Get(0).(*credits.Balance); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CreditsRepository) Update(ctx context.Context, b *credits.Balance) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
