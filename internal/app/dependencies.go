package app

import (
	"github.com/Leonardo-MT93/finanzas/internal/config"
	"github.com/Leonardo-MT93/finanzas/internal/storage"
	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/backup"
	"github.com/Leonardo-MT93/finanzas/pkg/card"
	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/goal"
	"github.com/Leonardo-MT93/finanzas/pkg/stats"
	"github.com/Leonardo-MT93/finanzas/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Ledger         expense.Ledger
	ExpenseService expense.Service
	ExpenseHandler *expense.Handler

	CategoryRepo    category.Repository
	CategoryHandler *category.Handler

	UserRepo    user.Repository
	UserService user.Service
	UserHandler *user.Handler

	CardRepo    card.Repository
	CardService card.Service
	CardHandler *card.Handler

	GoalRepo    goal.Repository
	GoalService goal.Service
	GoalHandler *goal.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler

	BackupService backup.Service
	BackupHandler *backup.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store *storage.Store, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = utils.SystemClock{}

	deps.Ledger = storage.NewExpenseRepo(store, deps.Clock)
	deps.ExpenseService = expense.NewServiceImpl(deps.Ledger, deps.Clock)
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService)

	deps.CategoryRepo = storage.NewCategoryRepo(store)
	deps.CategoryHandler = category.NewHandler(deps.CategoryRepo)

	deps.UserRepo = storage.NewUserRepo(store)
	deps.UserService = user.NewService(deps.UserRepo, deps.Clock)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.CardRepo = storage.NewCardRepo(store)
	deps.CardService = card.NewServiceImpl(deps.CardRepo, deps.Clock)
	deps.CardHandler = card.NewHandler(deps.CardService)

	deps.GoalRepo = storage.NewGoalRepo(store)
	deps.GoalService = goal.NewServiceImpl(deps.GoalRepo, deps.Ledger, deps.Clock)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.StatsService = stats.NewServiceImpl(deps.Ledger, deps.UserRepo, deps.CategoryRepo, deps.Clock)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	deps.BackupService = backup.NewServiceImpl(deps.UserRepo, deps.Ledger, deps.CardRepo, deps.GoalRepo, deps.CategoryRepo, store, deps.Clock)
	deps.BackupHandler = backup.NewHandler(deps.BackupService)

	return deps
}
