package storage

import (
	"context"

	"github.com/Leonardo-MT93/finanzas/pkg/goal"
)

// GoalRepo implements goal.Repository on the state store.
type GoalRepo struct {
	store *Store
}

func NewGoalRepo(store *Store) *GoalRepo {
	return &GoalRepo{store: store}
}

func (r *GoalRepo) GetAll(ctx context.Context) ([]goal.MonthlyGoal, error) {
	var out []goal.MonthlyGoal
	r.store.read(func(state State) {
		out = make([]goal.MonthlyGoal, len(state.MonthlyGoals))
		copy(out, state.MonthlyGoals)
	})
	return out, nil
}

func (r *GoalRepo) Set(ctx context.Context, g goal.MonthlyGoal) error {
	return r.store.mutate(func(state *State) {
		for i := range state.MonthlyGoals {
			if state.MonthlyGoals[i].Year == g.Year && state.MonthlyGoals[i].Month == g.Month {
				state.MonthlyGoals[i] = g
				return
			}
		}
		state.MonthlyGoals = append(state.MonthlyGoals, g)
	})
}
