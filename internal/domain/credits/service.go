package credits

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

// Service handles credit balance operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new credits service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Get fetches the balance for an email.
func (s *Service) Get(ctx context.Context, email string) (*Balance, error) {
	b, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBalanceNotFound
		}
		return nil, fmt.Errorf("getting credit balance: %w", err)
	}
	return b, nil
}

// Set replaces the current credit count for an existing balance.
func (s *Service) Set(ctx context.Context, email string, amount int) (*Balance, error) {
	if amount < 0 {
		return nil, ErrInvalidInput
	}
	b, err := s.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	b.Credits = amount
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("updating credit balance: %w", err)
	}
	return b, nil
}

// Add credits a purchase to the balance, creating the balance record on first
// purchase. Total purchased accumulates and the purchase time is stamped.
func (s *Service) Add(ctx context.Context, email string, amount int) (*Balance, error) {
	if strings.TrimSpace(email) == "" || amount <= 0 {
		return nil, ErrInvalidInput
	}

	now := s.now().UTC()
	b, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting credit balance: %w", err)
		}
		b = &Balance{
			ID:             uuid.NewString(),
			Email:          email,
			Credits:        amount,
			TotalPurchased: amount,
			LastPurchase:   &now,
			CreatedAt:      now,
		}
		if err := s.repo.Create(ctx, b); err != nil {
			return nil, fmt.Errorf("creating credit balance: %w", err)
		}
		s.logger.Info("credit balance created", "email", email, "credits", amount)
		return b, nil
	}

	b.Credits += amount
	b.TotalPurchased += amount
	b.LastPurchase = &now
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("updating credit balance: %w", err)
	}
	s.logger.Info("credits added", "email", email, "amount", amount)
	return b, nil
}
