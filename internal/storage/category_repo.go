package storage

import (
	"context"

	"github.com/Leonardo-MT93/finanzas/pkg/category"
)

// CategoryRepo implements category.Repository on the state store.
type CategoryRepo struct {
	store *Store
}

func NewCategoryRepo(store *Store) *CategoryRepo {
	return &CategoryRepo{store: store}
}

func (r *CategoryRepo) List(ctx context.Context) ([]category.Category, error) {
	var out []category.Category
	r.store.read(func(state State) {
		out = make([]category.Category, len(state.Categories))
		copy(out, state.Categories)
	})
	return out, nil
}
