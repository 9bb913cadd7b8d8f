package goal

import "context"

// StubGoalRepo is an in-memory Repository for tests.
type StubGoalRepo struct {
	goals []MonthlyGoal
}

func NewStubGoalRepo() *StubGoalRepo {
	return &StubGoalRepo{}
}

func (s *StubGoalRepo) GetAll(ctx context.Context) ([]MonthlyGoal, error) {
	out := make([]MonthlyGoal, len(s.goals))
	copy(out, s.goals)
	return out, nil
}

func (s *StubGoalRepo) Set(ctx context.Context, g MonthlyGoal) error {
	for i := range s.goals {
		if s.goals[i].Year == g.Year && s.goals[i].Month == g.Month {
			s.goals[i] = g
			return nil
		}
	}
	s.goals = append(s.goals, g)
	return nil
}

func (s *StubGoalRepo) Cleanup() {
	s.goals = nil
}
