package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/stats"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	SetCurrent(ctx context.Context, targetAmount float64) (MonthlyGoal, error)
	GetCurrent(ctx context.Context) (Progress, error)
}

// Progress is the live view of the current month's goal. Spent is recomputed
// from the ledger on every read, not taken from the stored snapshot.
type Progress struct {
	Goal          MonthlyGoal `json:"goal"`
	Spent         float64     `json:"spent"`
	Percentage    float64     `json:"percentage"`
	Remaining     float64     `json:"remaining"`
	DaysRemaining int         `json:"days_remaining"`
	DailyBudget   float64     `json:"daily_budget"`
	OverBudget    bool        `json:"over_budget"`
}

type ServiceImpl struct {
	repo   Repository
	ledger expense.Ledger
	clock  utils.Clock
}

func NewServiceImpl(repo Repository, ledger expense.Ledger, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, ledger: ledger, clock: clock}
}

// SetCurrent creates or replaces the goal for the month containing now. The
// stored CurrentAmount is a snapshot of spending at save time.
func (s *ServiceImpl) SetCurrent(ctx context.Context, targetAmount float64) (MonthlyGoal, error) {
	now := s.clock.Now()
	g := MonthlyGoal{
		ID:           uuid.NewString(),
		Month:        int(now.Month()),
		Year:         now.Year(),
		TargetAmount: targetAmount,
	}
	if err := g.Validate(); err != nil {
		return MonthlyGoal{}, fmt.Errorf("invalid goal: %w", err)
	}

	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return MonthlyGoal{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	g.CurrentAmount = stats.MonthlyTotal(expenses, now)

	if err := s.repo.Set(ctx, g); err != nil {
		return MonthlyGoal{}, fmt.Errorf("failed to store goal: %w", err)
	}
	log.Debugf("goal for %d-%02d set to %.2f", g.Year, g.Month, g.TargetAmount)
	return g, nil
}

func (s *ServiceImpl) GetCurrent(ctx context.Context) (Progress, error) {
	now := s.clock.Now()
	goals, err := s.repo.GetAll(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to list goals: %w", err)
	}

	var current *MonthlyGoal
	for i := range goals {
		if goals[i].Year == now.Year() && goals[i].Month == int(now.Month()) {
			current = &goals[i]
			break
		}
	}
	if current == nil {
		return Progress{}, ErrNoGoal
	}

	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return Progress{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	return progressFor(*current, stats.MonthlyTotal(expenses, now), now), nil
}

func progressFor(g MonthlyGoal, spent float64, now time.Time) Progress {
	progress := Progress{
		Goal:      g,
		Spent:     spent,
		Remaining: g.TargetAmount - spent,
	}
	if g.TargetAmount > 0 {
		progress.Percentage = spent / g.TargetAmount * 100
		if progress.Percentage > 100 {
			progress.Percentage = 100
		}
	}
	progress.OverBudget = spent > g.TargetAmount

	// Day 0 of the next month is the last day of this one.
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	progress.DaysRemaining = daysInMonth - now.Day()

	days := progress.DaysRemaining
	if days < 1 {
		days = 1
	}
	progress.DailyBudget = progress.Remaining / float64(days)
	return progress
}
