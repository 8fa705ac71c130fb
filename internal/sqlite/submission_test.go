package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/submission"
	"github.com/vpstudios/backlot/internal/repository"
)

func newSubmission(id string, date time.Time) *submission.Submission {
	return &submission.Submission{
		ID:             id,
		ProjectName:    "Launch Ad",
		BrandName:      "Acme",
		ProjectGoals:   "Drive awareness",
		PackageType:    "lite",
		Status:         submission.StatusReceived,
		SubmissionDate: date,
	}
}

func TestSubmissionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestDB(t))

	date := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	sub := newSubmission("VP-2026-000001", date)
	sub.Timeline = "2 weeks"
	sub.Files = []submission.FileMeta{{Name: "brief.pdf", Size: 1024, Type: "application/pdf"}}
	require.NoError(t, repo.Create(ctx, sub))

	got, err := repo.Get(ctx, "VP-2026-000001")
	require.NoError(t, err)
	require.Equal(t, "Launch Ad", got.ProjectName)
	require.Equal(t, "Acme", got.BrandName)
	require.Equal(t, "2 weeks", got.Timeline)
	require.Empty(t, got.AdditionalNotes)
	require.Equal(t, submission.StatusReceived, got.Status)
	require.Len(t, got.Files, 1)
	require.Equal(t, "brief.pdf", got.Files[0].Name)
	require.True(t, got.SubmissionDate.Equal(date))
}

func TestSubmissionRepository_Get_NotFound(t *testing.T) {
	repo := NewSubmissionRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), "VP-2026-999999")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSubmissionRepository_Create_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestDB(t))

	date := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newSubmission("VP-2026-000001", date)))

	err := repo.Create(ctx, newSubmission("VP-2026-000001", date))
	require.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestSubmissionRepository_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestDB(t))

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newSubmission("VP-2026-000001", base)))
	require.NoError(t, repo.Create(ctx, newSubmission("VP-2026-000002", base.Add(2*time.Hour))))
	require.NoError(t, repo.Create(ctx, newSubmission("VP-2026-000003", base.Add(time.Hour))))

	subs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	require.Equal(t, "VP-2026-000002", subs[0].ID)
	require.Equal(t, "VP-2026-000003", subs[1].ID)
	require.Equal(t, "VP-2026-000001", subs[2].ID)
}

func TestSubmissionRepository_ListByStatusAndPackage(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestDB(t))

	base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	first := newSubmission("VP-2026-000001", base)
	require.NoError(t, repo.Create(ctx, first))

	second := newSubmission("VP-2026-000002", base.Add(time.Hour))
	second.PackageType = "signature"
	require.NoError(t, repo.Create(ctx, second))

	changed, err := repo.UpdateStatus(ctx, first.ID, submission.StatusReceived, submission.StatusInProduction)
	require.NoError(t, err)
	require.True(t, changed)

	byStatus, err := repo.ListByStatus(ctx, submission.StatusInProduction)
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	require.Equal(t, first.ID, byStatus[0].ID)

	byPackage, err := repo.ListByPackage(ctx, "signature")
	require.NoError(t, err)
	require.Len(t, byPackage, 1)
	require.Equal(t, second.ID, byPackage[0].ID)

	none, err := repo.ListByStatus(ctx, submission.StatusDelivered)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestSubmissionRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewSubmissionRepository(newTestDB(t))

	date := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newSubmission("VP-2026-000001", date)))

	changed, err := repo.UpdateStatus(ctx, "VP-2026-000001", submission.StatusReceived, submission.StatusInProduction)
	require.NoError(t, err)
	require.True(t, changed)

	// Second identical update loses the conditional check.
	changed, err = repo.UpdateStatus(ctx, "VP-2026-000001", submission.StatusReceived, submission.StatusInProduction)
	require.NoError(t, err)
	require.False(t, changed)

	_, err = repo.UpdateStatus(ctx, "VP-2026-999999", submission.StatusReceived, submission.StatusInProduction)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
