package goal

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoGoal is returned when the current month has no goal configured.
var ErrNoGoal = errors.New("no goal set for the current month")

// MonthlyGoal is a spending target for one calendar month. CurrentAmount is
// the spending snapshot taken when the goal was last saved; live progress is
// always recomputed from the ledger.
type MonthlyGoal struct {
	ID            string  `json:"id"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
}

func (g MonthlyGoal) Validate() error {
	if g.Month < 1 || g.Month > 12 {
		return fmt.Errorf("month %d out of range 1..12", g.Month)
	}
	if g.TargetAmount < 0 {
		return fmt.Errorf("target amount must not be negative")
	}
	return nil
}

// Repository stores at most one goal per (year, month); Set replaces any
// existing goal for the same month.
type Repository interface {
	GetAll(ctx context.Context) ([]MonthlyGoal, error)
	Set(ctx context.Context, g MonthlyGoal) error
}
