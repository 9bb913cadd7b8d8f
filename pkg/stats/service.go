package stats

import (
	"context"
	"fmt"
	"sort"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/user"
)

type Service interface {
	Summary(ctx context.Context) (MonthlySummary, error)
	History(ctx context.Context) ([]MonthGroup, error)
	Projection(ctx context.Context) (Projection, error)
	Recent(ctx context.Context) ([]RecencyGroup, error)
}

// historyLimit caps the monthly history view at half a year.
const historyLimit = 6

type ServiceImpl struct {
	ledger     expense.Ledger
	users      user.Repository
	categories category.Repository
	clock      utils.Clock
}

func NewServiceImpl(ledger expense.Ledger, users user.Repository, categories category.Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{ledger: ledger, users: users, categories: categories, clock: clock}
}

func (s *ServiceImpl) Summary(ctx context.Context) (MonthlySummary, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("failed to list categories: %w", err)
	}

	// No configured user means no salary; the balance then just goes negative
	// with spending.
	var salary float64
	current, err := s.users.Get(ctx)
	if err != nil {
		return MonthlySummary{}, fmt.Errorf("failed to load user: %w", err)
	}
	if current != nil {
		salary = current.MonthlySalary
	}

	now := s.clock.Now()
	prevYear, prevMonth := previousMonth(now.Year(), now.Month())
	currentTotal := MonthlyTotal(expenses, now)
	previousTotal := TotalForMonth(expenses, prevYear, prevMonth)

	return MonthlySummary{
		CurrentTotal:       currentTotal,
		PreviousTotal:      previousTotal,
		ChangeFromPrevious: MonthOverMonthChange(currentTotal, previousTotal),
		DailyAverage:       DailyAverage(expenses, now),
		AvailableBalance:   AvailableBalance(salary, expenses, now),
		Categories:         CategoryBreakdown(expenses, categories, now),
	}, nil
}

func (s *ServiceImpl) History(ctx context.Context) ([]MonthGroup, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return MonthlyHistory(expenses, historyLimit), nil
}

func (s *ServiceImpl) Projection(ctx context.Context) (Projection, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return Projection{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	return NextMonthProjection(expenses), nil
}

func (s *ServiceImpl) Recent(ctx context.Context) ([]RecencyGroup, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return GroupByRecency(expenses, s.clock.Now()), nil
}
