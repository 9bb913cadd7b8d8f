package card

import "context"

// StubCardRepo is an in-memory Repository for tests.
type StubCardRepo struct {
	cards []CreditCard
}

func NewStubCardRepo() *StubCardRepo {
	return &StubCardRepo{}
}

func (s *StubCardRepo) GetAll(ctx context.Context) ([]CreditCard, error) {
	out := make([]CreditCard, 0, len(s.cards))
	for _, c := range s.cards {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (s *StubCardRepo) Store(ctx context.Context, c CreditCard) error {
	s.cards = append(s.cards, c.Clone())
	return nil
}

func (s *StubCardRepo) Update(ctx context.Context, id string, patch Patch) (bool, error) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			patch.Apply(&s.cards[i])
			return true, nil
		}
	}
	return false, nil
}

func (s *StubCardRepo) Delete(ctx context.Context, id string) (bool, error) {
	for i := range s.cards {
		if s.cards[i].ID == id {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubCardRepo) AddBenefit(ctx context.Context, cardID string, benefit CardBenefit) (bool, error) {
	for i := range s.cards {
		if s.cards[i].ID == cardID {
			s.cards[i].Benefits = append(s.cards[i].Benefits, benefit)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubCardRepo) DeleteBenefit(ctx context.Context, cardID string, benefitID string) (bool, error) {
	for i := range s.cards {
		if s.cards[i].ID != cardID {
			continue
		}
		for j := range s.cards[i].Benefits {
			if s.cards[i].Benefits[j].ID == benefitID {
				s.cards[i].Benefits = append(s.cards[i].Benefits[:j], s.cards[i].Benefits[j+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *StubCardRepo) Cleanup() {
	s.cards = nil
}
