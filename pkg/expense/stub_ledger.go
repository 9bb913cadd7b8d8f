package expense

import "context"

// StubLedger is an in-memory Ledger for tests.
type StubLedger struct {
	expenses []Expense
}

func NewStubLedger() *StubLedger {
	return &StubLedger{}
}

func (s *StubLedger) List(ctx context.Context) ([]Expense, error) {
	out := make([]Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *StubLedger) Add(ctx context.Context, e Expense) error {
	s.expenses = append(s.expenses, e.Clone())
	return nil
}

func (s *StubLedger) Update(ctx context.Context, id string, patch Patch) (bool, error) {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			patch.Apply(&s.expenses[i])
			return true, nil
		}
	}
	return false, nil
}

func (s *StubLedger) Delete(ctx context.Context, id string) (bool, error) {
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *StubLedger) ReplaceAll(ctx context.Context, expenses []Expense) error {
	s.expenses = make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		s.expenses = append(s.expenses, e.Clone())
	}
	return nil
}

func (s *StubLedger) Cleanup() {
	s.expenses = nil
}
