package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/repository"
)

func TestCreditsRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditsRepository(newTestDB(t))

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &credits.Balance{
		ID:             "bal-1",
		Email:          "studio@example.com",
		Credits:        100,
		TotalPurchased: 100,
		CreatedAt:      created,
	}))

	got, err := repo.GetByEmail(ctx, "studio@example.com")
	require.NoError(t, err)
	require.Equal(t, "bal-1", got.ID)
	require.Equal(t, 100, got.Credits)
	require.Nil(t, got.LastPurchase)
}

func TestCreditsRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditsRepository(newTestDB(t))

	created := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, &credits.Balance{ID: "bal-1", Email: "studio@example.com", CreatedAt: created}))

	err := repo.Create(ctx, &credits.Balance{ID: "bal-2", Email: "studio@example.com", CreatedAt: created})
	require.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestCreditsRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewCreditsRepository(newTestDB(t))

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	b := &credits.Balance{ID: "bal-1", Email: "studio@example.com", Credits: 100, TotalPurchased: 100, CreatedAt: created}
	require.NoError(t, repo.Create(ctx, b))

	purchase := created.Add(24 * time.Hour)
	b.Credits = 160
	b.TotalPurchased = 160
	b.LastPurchase = &purchase
	require.NoError(t, repo.Update(ctx, b))

	got, err := repo.GetByEmail(ctx, "studio@example.com")
	require.NoError(t, err)
	require.Equal(t, 160, got.Credits)
	require.Equal(t, 160, got.TotalPurchased)
	require.NotNil(t, got.LastPurchase)
	require.True(t, got.LastPurchase.Equal(purchase))
}

func TestCreditsRepository_Update_NotFound(t *testing.T) {
	repo := NewCreditsRepository(newTestDB(t))

	err := repo.Update(context.Background(), &credits.Balance{Email: "nobody@example.com"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreditsRepository_GetByEmail_NotFound(t *testing.T) {
	repo := NewCreditsRepository(newTestDB(t))

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
