package user

import "context"

// StubUserRepo holds the profile in memory, for tests.
type StubUserRepo struct {
	user *User
}

func NewStubUserRepo() *StubUserRepo {
	return &StubUserRepo{}
}

func (s *StubUserRepo) Get(ctx context.Context) (*User, error) {
	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *StubUserRepo) Save(ctx context.Context, u User) error {
	s.user = &u
	return nil
}

func (s *StubUserRepo) Cleanup() {
	s.user = nil
}
