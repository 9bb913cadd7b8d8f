package user

import (
	"context"
	"errors"
	"time"

	"github.com/Leonardo-MT93/finanzas/pkg/expense"
)

var ErrUserNotConfigured = errors.New("user profile not configured")

// User is the single profile of this installation. MonthlySalary feeds the
// available-balance derivation.
type User struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	Name              string           `json:"name"`
	MonthlySalary     float64          `json:"monthly_salary"`
	PreferredCurrency expense.Currency `json:"preferred_currency"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// Repository returns nil (not an error) when no profile has been saved yet.
type Repository interface {
	Get(ctx context.Context) (*User, error)
	Save(ctx context.Context, u User) error
}
