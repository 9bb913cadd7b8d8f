package expense

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	// Type accepts an expense type, or the list-view tabs "fixed"
	// (installments + subscriptions) and "variable" (single expenses).
	Type     string
	Category string
	Search   string
	From     *time.Time
	To       *time.Time
	Min      *float64
	Max      *float64
}

type Service interface {
	List(ctx context.Context, filter Filter) ([]Expense, error)
	Create(ctx context.Context, e Expense) (Expense, error)
	Update(ctx context.Context, id string, patch Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ResetPreview(ctx context.Context) (ResetPreview, error)
	ResetMonth(ctx context.Context) (ResetResult, error)
}

// ResetPreview is what the confirmation dialog shows before a rollover. It is
// scoped to the current calendar month, unlike the transition itself.
type ResetPreview struct {
	Keep        []Expense `json:"keep"`
	Remove      []Expense `json:"remove"`
	KeepTotal   float64   `json:"keep_total"`
	RemoveTotal float64   `json:"remove_total"`
}

type ResetResult struct {
	KeptCount    int     `json:"kept_count"`
	RemovedCount int     `json:"removed_count"`
	RemovedTotal float64 `json:"removed_total"`
}

type ServiceImpl struct {
	ledger Ledger
	clock  utils.Clock
}

func NewServiceImpl(ledger Ledger, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{ledger: ledger, clock: clock}
}

func (s *ServiceImpl) List(ctx context.Context, filter Filter) ([]Expense, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	filtered := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if matchesFilter(e, filter) {
			filtered = append(filtered, e)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})
	return filtered, nil
}

func matchesFilter(e Expense, filter Filter) bool {
	switch filter.Type {
	case "":
	case "fixed":
		if e.Type != TypeInstallment && e.Type != TypeSubscription {
			return false
		}
	case "variable":
		if e.Type != TypeSingle {
			return false
		}
	default:
		if e.Type != Type(filter.Type) {
			return false
		}
	}
	if filter.Category != "" && e.Category != filter.Category {
		return false
	}
	if filter.Search != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(filter.Search)) {
		return false
	}
	if filter.From != nil && e.Date.Before(NormalizeDate(*filter.From)) {
		return false
	}
	if filter.To != nil && e.Date.After(NormalizeDate(*filter.To)) {
		return false
	}
	if filter.Min != nil && e.Amount < *filter.Min {
		return false
	}
	if filter.Max != nil && e.Amount > *filter.Max {
		return false
	}
	return true
}

// Create admits a new expense: the ledger assigns the id and timestamps,
// normalizes the date, and recomputes the installment value from the total.
func (s *ServiceImpl) Create(ctx context.Context, e Expense) (Expense, error) {
	if e.Installment != nil && e.Installment.CurrentInstallment == 0 {
		e.Installment.CurrentInstallment = 1
	}
	if err := e.Validate(); err != nil {
		return Expense{}, fmt.Errorf("invalid expense: %w", err)
	}

	now := s.clock.Now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Date = NormalizeDate(e.Date)

	if e.Installment != nil {
		installment := *e.Installment
		installment.InstallmentValue = installment.TotalAmount / float64(installment.TotalInstallments)
		installment.FirstPaymentDate = NormalizeDate(installment.FirstPaymentDate)
		e.Installment = &installment
		// The monthly charge of an installment purchase is one installment.
		e.Amount = installment.InstallmentValue
	}

	if err := s.ledger.Add(ctx, e); err != nil {
		return Expense{}, fmt.Errorf("failed to store expense: %w", err)
	}
	log.Debugf("created expense %s (%s, %s %.2f)", e.ID, e.Type, e.Currency, e.Amount)
	return e, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, patch Patch) (bool, error) {
	updated, err := s.ledger.Update(ctx, id, patch)
	if err != nil {
		return false, fmt.Errorf("failed to update expense: %w", err)
	}
	if !updated {
		log.Warnf("expense %s not updated, it does not exist", id)
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.ledger.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}
	if !deleted {
		log.Warnf("expense %s not deleted, it does not exist", id)
	}
	return deleted, nil
}

// ResetPreview partitions only the current month's expenses, which is what
// the user sees before confirming a reset.
func (s *ServiceImpl) ResetPreview(ctx context.Context) (ResetPreview, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return ResetPreview{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	now := s.clock.Now()
	currentMonth := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.InMonth(now.Year(), now.Month()) {
			currentMonth = append(currentMonth, e)
		}
	}

	keep, remove := Partition(currentMonth)
	preview := ResetPreview{Keep: keep, Remove: remove}
	for _, e := range keep {
		preview.KeepTotal += e.Amount
	}
	for _, e := range remove {
		preview.RemoveTotal += e.Amount
	}
	return preview, nil
}

// ResetMonth applies the monthly rollover to the entire ledger: the REMOVE
// set is purged (past months included), kept installments advance by one,
// kept subscriptions are untouched. Forward-only; the caller is expected to
// have confirmed.
func (s *ServiceImpl) ResetMonth(ctx context.Context) (ResetResult, error) {
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return ResetResult{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	keep, remove := Partition(expenses)
	advanced := make([]Expense, 0, len(keep))
	for _, e := range keep {
		advanced = append(advanced, AdvanceInstallment(e))
	}

	if err := s.ledger.ReplaceAll(ctx, advanced); err != nil {
		return ResetResult{}, fmt.Errorf("failed to apply month reset: %w", err)
	}

	result := ResetResult{KeptCount: len(keep), RemovedCount: len(remove)}
	for _, e := range remove {
		result.RemovedTotal += e.Amount
	}
	log.Infof("month reset: kept %d expenses, removed %d", result.KeptCount, result.RemovedCount)
	return result, nil
}
