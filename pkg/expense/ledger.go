package expense

import "context"

// Ledger is the authoritative expense collection. Add does not check for
// duplicate ids (the service assigns them); Update and Delete report false
// for unknown ids instead of failing.
type Ledger interface {
	List(ctx context.Context) ([]Expense, error)
	Add(ctx context.Context, e Expense) error
	Update(ctx context.Context, id string, patch Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ReplaceAll swaps the whole collection in one mutation; the monthly
	// rollover relies on it to apply its partition atomically.
	ReplaceAll(ctx context.Context, expenses []Expense) error
}
