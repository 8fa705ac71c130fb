package asset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vpstudios/backlot/internal/repository"
)

// Service handles marketplace asset operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new asset service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines asset creation inputs.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Price       int64    `json:"price"`
	CreditCost  int      `json:"creditCost"`
	PreviewURL  string   `json:"previewUrl"`
	DownloadURL string   `json:"downloadUrl"`
	FileSize    int64    `json:"fileSize"`
	FileFormat  string   `json:"fileFormat"`
	License     string   `json:"license"`
	Featured    bool     `json:"featured"`
}

// Create stores a new marketplace asset with a generated id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Asset, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, ErrInvalidInput
	}
	if req.Price < 0 || req.CreditCost < 0 {
		return nil, ErrInvalidInput
	}

	a := &Asset{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		Price:       req.Price,
		CreditCost:  req.CreditCost,
		PreviewURL:  req.PreviewURL,
		DownloadURL: req.DownloadURL,
		FileSize:    req.FileSize,
		FileFormat:  req.FileFormat,
		License:     req.License,
		Featured:    req.Featured,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}
	s.logger.Info("asset created", "id", a.ID, "category", a.Category)
	return a, nil
}

// Get fetches an asset by id.
func (s *Service) Get(ctx context.Context, id string) (*Asset, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	return a, nil
}

// List returns all assets, newest first.
func (s *Service) List(ctx context.Context) ([]Asset, error) {
	return s.repo.List(ctx)
}

// ListByCategory returns assets in a category, newest first.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]Asset, error) {
	return s.repo.ListByCategory(ctx, category)
}

// ListFeatured returns featured assets, newest first.
func (s *Service) ListFeatured(ctx context.Context) ([]Asset, error) {
	return s.repo.ListFeatured(ctx)
}
