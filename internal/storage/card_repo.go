package storage

import (
	"context"

	"github.com/Leonardo-MT93/finanzas/pkg/card"
)

// CardRepo implements card.Repository on the state store.
type CardRepo struct {
	store *Store
}

func NewCardRepo(store *Store) *CardRepo {
	return &CardRepo{store: store}
}

func (r *CardRepo) GetAll(ctx context.Context) ([]card.CreditCard, error) {
	var out []card.CreditCard
	r.store.read(func(state State) {
		out = make([]card.CreditCard, 0, len(state.CreditCards))
		for _, c := range state.CreditCards {
			out = append(out, c.Clone())
		}
	})
	return out, nil
}

func (r *CardRepo) Store(ctx context.Context, c card.CreditCard) error {
	return r.store.mutate(func(state *State) {
		state.CreditCards = append(state.CreditCards, c.Clone())
	})
}

func (r *CardRepo) Update(ctx context.Context, id string, patch card.Patch) (bool, error) {
	updated := false
	err := r.store.mutate(func(state *State) {
		for i := range state.CreditCards {
			if state.CreditCards[i].ID == id {
				patch.Apply(&state.CreditCards[i])
				updated = true
				return
			}
		}
	})
	return updated, err
}

func (r *CardRepo) Delete(ctx context.Context, id string) (bool, error) {
	deleted := false
	err := r.store.mutate(func(state *State) {
		for i := range state.CreditCards {
			if state.CreditCards[i].ID == id {
				state.CreditCards = append(state.CreditCards[:i], state.CreditCards[i+1:]...)
				deleted = true
				return
			}
		}
	})
	return deleted, err
}

func (r *CardRepo) AddBenefit(ctx context.Context, cardID string, benefit card.CardBenefit) (bool, error) {
	added := false
	err := r.store.mutate(func(state *State) {
		for i := range state.CreditCards {
			if state.CreditCards[i].ID == cardID {
				state.CreditCards[i].Benefits = append(state.CreditCards[i].Benefits, benefit)
				added = true
				return
			}
		}
	})
	return added, err
}

func (r *CardRepo) DeleteBenefit(ctx context.Context, cardID string, benefitID string) (bool, error) {
	deleted := false
	err := r.store.mutate(func(state *State) {
		for i := range state.CreditCards {
			if state.CreditCards[i].ID != cardID {
				continue
			}
			benefits := state.CreditCards[i].Benefits
			for j := range benefits {
				if benefits[j].ID == benefitID {
					state.CreditCards[i].Benefits = append(benefits[:j], benefits[j+1:]...)
					deleted = true
					return
				}
			}
			return
		}
	})
	return deleted, err
}
