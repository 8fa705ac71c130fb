package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/vpstudios/backlot/internal/domain/asset"
	"github.com/vpstudios/backlot/internal/repository"
)

// AssetRepository implements repository.AssetRepository for SQLite
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

const assetColumns = `
	id, title, description, category, tags, price, credit_cost,
	preview_url, download_url, file_size, file_format, license, featured, created_at
`

// Create inserts a new asset
func (r *AssetRepository) Create(ctx context.Context, a *asset.Asset) error {
	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.Title,
		nullable(a.Description),
		a.Category,
		string(tags),
		a.Price,
		a.CreditCost,
		nullable(a.PreviewURL),
		nullable(a.DownloadURL),
		a.FileSize,
		nullable(a.FileFormat),
		nullable(a.License),
		a.Featured,
		a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateID
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Get retrieves an asset by ID
func (r *AssetRepository) Get(ctx context.Context, id string) (*asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = ?`

	a, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return a, nil
}

// List returns all assets, newest first
func (r *AssetRepository) List(ctx context.Context) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

// ListByCategory returns assets in a category, newest first
func (r *AssetRepository) ListByCategory(ctx context.Context, category string) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE category = ? ORDER BY created_at DESC`
	return r.queryList(ctx, query, category)
}

// ListFeatured returns featured assets, newest first
func (r *AssetRepository) ListFeatured(ctx context.Context) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE featured = 1 ORDER BY created_at DESC`
	return r.queryList(ctx, query)
}

func (r *AssetRepository) queryList(ctx context.Context, query string, args ...any) ([]asset.Asset, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []asset.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, *a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset rows: %w", err)
	}

	return assets, nil
}

func scanAsset(row rowScanner) (*asset.Asset, error) {
	var a asset.Asset
	var description, previewURL, downloadURL, fileFormat, license sql.NullString
	var tags string

	err := row.Scan(
		&a.ID,
		&a.Title,
		&description,
		&a.Category,
		&tags,
		&a.Price,
		&a.CreditCost,
		&previewURL,
		&downloadURL,
		&a.FileSize,
		&fileFormat,
		&license,
		&a.Featured,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Description = description.String
	a.PreviewURL = previewURL.String
	a.DownloadURL = downloadURL.String
	a.FileFormat = fileFormat.String
	a.License = license.String
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}

	return &a, nil
}
