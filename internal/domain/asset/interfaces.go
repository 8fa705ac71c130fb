package asset

import "context"

// Repository provides persistence for marketplace assets.
type Repository interface {
	Create(ctx context.Context, a *Asset) error
	Get(ctx context.Context, id string) (*Asset, error)
	List(ctx context.Context) ([]Asset, error)
	ListByCategory(ctx context.Context, category string) ([]Asset, error)
	ListFeatured(ctx context.Context) ([]Asset, error)
}
