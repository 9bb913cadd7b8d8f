package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Leonardo-MT93/finanzas/pkg/card"
	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/goal"
	"github.com/Leonardo-MT93/finanzas/pkg/user"
	log "github.com/sirupsen/logrus"
)

// State is the whole application state, serialized as a single JSON document.
// The collection keys are camelCase so exported backups and the on-disk file
// share one shape.
type State struct {
	User         *user.User          `json:"user"`
	Expenses     []expense.Expense   `json:"expenses"`
	CreditCards  []card.CreditCard   `json:"creditCards"`
	MonthlyGoals []goal.MonthlyGoal  `json:"monthlyGoals"`
	Categories   []category.Category `json:"categories"`
}

func defaultState() State {
	return State{
		Expenses:     []expense.Expense{},
		CreditCards:  []card.CreditCard{},
		MonthlyGoals: []goal.MonthlyGoal{},
		Categories:   category.Defaults(),
	}
}

// Store owns the state file. Every mutation runs under the lock and is
// flushed to disk before it returns; reads serve the in-memory copy.
type Store struct {
	path  string
	mu    sync.Mutex
	state State
}

func NewStore(path string) *Store {
	return &Store{path: path, state: defaultState()}
}

// Load reads the state file, seeding first-run defaults when it is missing.
// A file that exists but cannot be parsed is an error, not a silent reset.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("no state file at %s, starting with defaults", s.path)
		s.state = defaultState()
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}
	if state.Expenses == nil {
		state.Expenses = []expense.Expense{}
	}
	if state.CreditCards == nil {
		state.CreditCards = []card.CreditCard{}
	}
	if state.MonthlyGoals == nil {
		state.MonthlyGoals = []goal.MonthlyGoal{}
	}
	if len(state.Categories) == 0 {
		state.Categories = category.Defaults()
	}
	s.state = state
	log.Infof("loaded state from %s (%d expenses, %d cards)", s.path, len(state.Expenses), len(state.CreditCards))
	return nil
}

// mutate applies fn to the state under the lock and persists the result.
// Persistence is fire-and-forget: the in-memory state is already updated, so
// a failed save is logged and the mutation still succeeds. The write goes
// through a temp file and a rename so a crash mid-save never leaves a
// truncated state file.
func (s *Store) mutate(fn func(state *State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	if err := s.save(); err != nil {
		log.Errorf("failed to persist state: %v", err)
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// read hands fn a snapshot view of the state under the lock. fn must copy
// anything it keeps.
func (s *Store) read(fn func(state State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Wipe resets everything back to first-run defaults, on disk included.
func (s *Store) Wipe(ctx context.Context) error {
	return s.mutate(func(state *State) {
		*state = defaultState()
	})
}
