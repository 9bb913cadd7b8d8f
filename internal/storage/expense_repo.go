package storage

import (
	"context"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
)

// ExpenseRepo implements expense.Ledger on the state store.
type ExpenseRepo struct {
	store *Store
	clock utils.Clock
}

func NewExpenseRepo(store *Store, clock utils.Clock) *ExpenseRepo {
	return &ExpenseRepo{store: store, clock: clock}
}

func (r *ExpenseRepo) List(ctx context.Context) ([]expense.Expense, error) {
	var out []expense.Expense
	r.store.read(func(state State) {
		out = make([]expense.Expense, 0, len(state.Expenses))
		for _, e := range state.Expenses {
			out = append(out, e.Clone())
		}
	})
	return out, nil
}

func (r *ExpenseRepo) Add(ctx context.Context, e expense.Expense) error {
	return r.store.mutate(func(state *State) {
		state.Expenses = append(state.Expenses, e.Clone())
	})
}

func (r *ExpenseRepo) Update(ctx context.Context, id string, patch expense.Patch) (bool, error) {
	updated := false
	err := r.store.mutate(func(state *State) {
		for i := range state.Expenses {
			if state.Expenses[i].ID == id {
				patch.Apply(&state.Expenses[i])
				state.Expenses[i].UpdatedAt = r.clock.Now()
				updated = true
				return
			}
		}
	})
	return updated, err
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.store.mutate(func(state *State) {
		for i := range state.Expenses {
			if state.Expenses[i].ID == id {
				state.Expenses = append(state.Expenses[:i], state.Expenses[i+1:]...)
				deleted = true
				return
			}
		}
	})
	return deleted, err
}

func (r *ExpenseRepo) ReplaceAll(ctx context.Context, expenses []expense.Expense) error {
	return r.store.mutate(func(state *State) {
		replacement := make([]expense.Expense, 0, len(expenses))
		for _, e := range expenses {
			replacement = append(replacement, e.Clone())
		}
		state.Expenses = replacement
	})
}
