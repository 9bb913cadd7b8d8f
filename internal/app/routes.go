package app

import (
	"github.com/Leonardo-MT93/finanzas/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Expenses
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/expenses", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expenses/reset/preview", deps.ExpenseHandler.ResetPreview).Methods("GET")
	r.HandleFunc("/api/expenses/reset", deps.ExpenseHandler.ResetMonth).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/categories", deps.CategoryHandler.List).Methods("GET")

	// Credit cards
	r.HandleFunc("/api/cards", deps.CardHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/cards", deps.CardHandler.Create).Methods("POST")
	r.HandleFunc("/api/cards/status", deps.CardHandler.Statuses).Methods("GET")
	r.HandleFunc("/api/cards/benefits/today", deps.CardHandler.TodaysBenefits).Methods("GET")
	r.HandleFunc("/api/cards/{id}", deps.CardHandler.Update).Methods("PATCH")
	r.HandleFunc("/api/cards/{id}", deps.CardHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/cards/{id}/benefits", deps.CardHandler.AddBenefit).Methods("POST")
	r.HandleFunc("/api/cards/{id}/benefits/{benefitId}", deps.CardHandler.RemoveBenefit).Methods("DELETE")

	// Goals
	r.HandleFunc("/api/goals/current", deps.GoalHandler.GetCurrent).Methods("GET")
	r.HandleFunc("/api/goals/current", deps.GoalHandler.SetCurrent).Methods("PUT")

	// Stats
	r.HandleFunc("/api/stats/summary", deps.StatsHandler.Summary).Methods("GET")
	r.HandleFunc("/api/stats/history", deps.StatsHandler.History).Methods("GET")
	r.HandleFunc("/api/stats/projection", deps.StatsHandler.Projection).Methods("GET")
	r.HandleFunc("/api/stats/recent", deps.StatsHandler.Recent).Methods("GET")

	// User profile
	r.HandleFunc("/api/user", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.UpdateUser).Methods("PUT")

	// Backup & data management
	r.HandleFunc("/api/backup/export", deps.BackupHandler.Export).Methods("GET")
	r.HandleFunc("/api/backup/import", deps.BackupHandler.Import).Methods("POST")
	r.HandleFunc("/api/backup/data", deps.BackupHandler.WipeAll).Methods("DELETE")
}
