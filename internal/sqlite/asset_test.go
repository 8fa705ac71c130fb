package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/repository"
)

func newAsset(id, category string, featured bool, created time.Time) *asset.Asset {
	return &asset.Asset{
		ID:         id,
		Title:      "Warehouse Scan",
		Category:   category,
		Tags:       []string{"industrial", "interior"},
		Price:      4999,
		CreditCost: 50,
		Featured:   featured,
		CreatedAt:  created,
	}
}

func TestAssetRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(newTestDB(t))

	created := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	a := newAsset("asset-1", "environments", true, created)
	a.Description = "Photogrammetry scan of a warehouse interior"
	a.FileFormat = "glb"
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.Get(ctx, "asset-1")
	require.NoError(t, err)
	require.Equal(t, "Warehouse Scan", got.Title)
	require.Equal(t, []string{"industrial", "interior"}, got.Tags)
	require.Equal(t, int64(4999), got.Price)
	require.True(t, got.Featured)
	require.Equal(t, "glb", got.FileFormat)
	require.Empty(t, got.License)
}

func TestAssetRepository_Get_NotFound(t *testing.T) {
	repo := NewAssetRepository(newTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAssetRepository_Lists(t *testing.T) {
	ctx := context.Background()
	repo := NewAssetRepository(newTestDB(t))

	base := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newAsset("asset-1", "environments", false, base)))
	require.NoError(t, repo.Create(ctx, newAsset("asset-2", "mocap", true, base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newAsset("asset-3", "environments", true, base.Add(2*time.Hour))))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "asset-3", all[0].ID)

	envs, err := repo.ListByCategory(ctx, "environments")
	require.NoError(t, err)
	require.Len(t, envs, 2)
	require.Equal(t, "asset-3", envs[0].ID)
	require.Equal(t, "asset-1", envs[1].ID)

	featured, err := repo.ListFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "asset-3", featured[0].ID)
	require.Equal(t, "asset-2", featured[1].ID)
}
