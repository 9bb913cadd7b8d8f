package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/card"
	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/goal"
	"github.com/Leonardo-MT93/finanzas/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Document is the full-state export. Field names are camelCase so a file
// exported before a reinstall stays readable by older exports' consumers.
type Document struct {
	User         *user.User          `json:"user"`
	Expenses     []expense.Expense   `json:"expenses"`
	CreditCards  []card.CreditCard   `json:"creditCards"`
	MonthlyGoals []goal.MonthlyGoal  `json:"monthlyGoals"`
	Categories   []category.Category `json:"categories"`
	ExportDate   time.Time           `json:"exportDate"`
}

// Wiper resets the persistent state back to first-run defaults.
type Wiper interface {
	Wipe(ctx context.Context) error
}

type Service interface {
	Export(ctx context.Context) (Document, error)
	WipeAll(ctx context.Context) error
}

type ServiceImpl struct {
	users      user.Repository
	ledger     expense.Ledger
	cards      card.Repository
	goals      goal.Repository
	categories category.Repository
	store      Wiper
	clock      utils.Clock
}

func NewServiceImpl(users user.Repository, ledger expense.Ledger, cards card.Repository,
	goals goal.Repository, categories category.Repository, store Wiper, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		users:      users,
		ledger:     ledger,
		cards:      cards,
		goals:      goals,
		categories: categories,
		store:      store,
		clock:      clock,
	}
}

func (s *ServiceImpl) Export(ctx context.Context) (Document, error) {
	current, err := s.users.Get(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("failed to load user: %w", err)
	}
	expenses, err := s.ledger.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("failed to list expenses: %w", err)
	}
	cards, err := s.cards.GetAll(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("failed to list cards: %w", err)
	}
	goals, err := s.goals.GetAll(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("failed to list goals: %w", err)
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return Document{}, fmt.Errorf("failed to list categories: %w", err)
	}

	return Document{
		User:         current,
		Expenses:     expenses,
		CreditCards:  cards,
		MonthlyGoals: goals,
		Categories:   categories,
		ExportDate:   s.clock.Now(),
	}, nil
}

func (s *ServiceImpl) WipeAll(ctx context.Context) error {
	if err := s.store.Wipe(ctx); err != nil {
		return fmt.Errorf("failed to wipe data: %w", err)
	}
	log.Info("all application data wiped")
	return nil
}
