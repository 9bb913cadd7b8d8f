package user

import (
	"context"
	"fmt"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/google/uuid"
)

type Service interface {
	Current(ctx context.Context) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewService(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) Current(ctx context.Context) (User, error) {
	u, err := s.repo.Get(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return User{}, ErrUserNotConfigured
	}
	return *u, nil
}

// Update creates the profile on first save and merges subsequent edits.
func (s *ServiceImpl) Update(ctx context.Context, u User) (User, error) {
	now := s.clock.Now()

	existing, err := s.repo.Get(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get user: %w", err)
	}
	if existing != nil {
		u.ID = existing.ID
		u.CreatedAt = existing.CreatedAt
	} else {
		u.ID = uuid.NewString()
		u.CreatedAt = now
	}
	if u.PreferredCurrency == "" {
		u.PreferredCurrency = expense.CurrencyARS
	}
	u.UpdatedAt = now

	if err := s.repo.Save(ctx, u); err != nil {
		return User{}, fmt.Errorf("failed to save user: %w", err)
	}
	return u, nil
}
