package credits

import "context"

// Repository provides persistence for credit balances.
type Repository interface {
	Create(ctx context.Context, b *Balance) error
	GetByEmail(ctx context.Context, email string) (*Balance, error)
	Update(ctx context.Context, b *Balance) error
}
