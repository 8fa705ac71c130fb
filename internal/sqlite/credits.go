package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vpstudios/backlot/internal/domain/credits"
	"github.com/vpstudios/backlot/internal/repository"
)

// CreditsRepository implements repository.CreditsRepository for SQLite
type CreditsRepository struct {
	db *DB
}

// NewCreditsRepository creates a new CreditsRepository
func NewCreditsRepository(db *DB) *CreditsRepository {
	return &CreditsRepository{db: db}
}

// Create inserts a new credit balance
func (r *CreditsRepository) Create(ctx context.Context, b *credits.Balance) error {
	query := `
		INSERT INTO user_credits (id, email, credits, total_purchased, last_purchase, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.Email,
		b.Credits,
		b.TotalPurchased,
		b.LastPurchase,
		b.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateID
		}
		return fmt.Errorf("failed to create credit balance: %w", err)
	}

	return nil
}

// GetByEmail retrieves a credit balance by email
func (r *CreditsRepository) GetByEmail(ctx context.Context, email string) (*credits.Balance, error) {
	query := `
		SELECT id, email, credits, total_purchased, last_purchase, created_at
		FROM user_credits
		WHERE email = ?
	`

	var b credits.Balance
	var lastPurchase sql.NullTime
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&b.ID,
		&b.Email,
		&b.Credits,
		&b.TotalPurchased,
		&lastPurchase,
		&b.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credit balance: %w", err)
	}

	if lastPurchase.Valid {
		b.LastPurchase = &lastPurchase.Time
	}
	return &b, nil
}

// Update writes the mutable fields of a credit balance
func (r *CreditsRepository) Update(ctx context.Context, b *credits.Balance) error {
	query := `
		UPDATE user_credits
		SET credits = ?, total_purchased = ?, last_purchase = ?
		WHERE email = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		b.Credits,
		b.TotalPurchased,
		b.LastPurchase,
		b.Email,
	)
	if err != nil {
		return fmt.Errorf("failed to update credit balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
