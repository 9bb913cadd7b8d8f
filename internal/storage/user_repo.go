package storage

import (
	"context"

	"github.com/Leonardo-MT93/finanzas/pkg/user"
)

// UserRepo implements user.Repository on the state store.
type UserRepo struct {
	store *Store
}

func NewUserRepo(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

func (r *UserRepo) Get(ctx context.Context) (*user.User, error) {
	var out *user.User
	r.store.read(func(state State) {
		if state.User != nil {
			u := *state.User
			out = &u
		}
	})
	return out, nil
}

func (r *UserRepo) Save(ctx context.Context, u user.User) error {
	return r.store.mutate(func(state *State) {
		state.User = &u
	})
}
