package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/card"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/Leonardo-MT93/finanzas/pkg/goal"
	"github.com/Leonardo-MT93/finanzas/pkg/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStore(path)
	require.NoError(t, store.Load())
	return store, path
}

func sampleExpense(id string) expense.Expense {
	return expense.Expense{
		ID:            id,
		Description:   "Television",
		Amount:        25000,
		Currency:      expense.CurrencyARS,
		Category:      "5",
		Type:          expense.TypeInstallment,
		PaymentMethod: expense.PaymentCredit,
		Date:          time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		Installment: &expense.InstallmentData{
			TotalAmount:        300000,
			InstallmentValue:   25000,
			TotalInstallments:  12,
			CurrentInstallment: 2,
			FirstPaymentDate:   time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		},
		CreatedAt: clock.FixedNow,
		UpdatedAt: clock.FixedNow,
	}
}

func TestLoad_MissingFileSeedsDefaults(t *testing.T) {
	store, path := newTestStore(t)

	categories, err := NewCategoryRepo(store).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 8)
	assert.Equal(t, "Comida", categories[0].Name)

	// nothing is written until the first mutation
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_RejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := NewStore(path).Load()

	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	repo := NewExpenseRepo(store, clock)
	require.NoError(t, repo.Add(ctx, sampleExpense("e1")))
	require.NoError(t, NewUserRepo(store).Save(ctx, user.User{
		ID: "u1", Name: "Leo", MonthlySalary: 150000, PreferredCurrency: expense.CurrencyARS,
	}))
	require.NoError(t, NewGoalRepo(store).Set(ctx, goal.MonthlyGoal{ID: "g1", Month: 3, Year: 2024, TargetAmount: 100000}))

	// a fresh store reading the same file sees identical state
	reloaded := NewStore(path)
	require.NoError(t, reloaded.Load())

	expenses, err := NewExpenseRepo(reloaded, clock).List(ctx)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, sampleExpense("e1"), expenses[0])

	u, err := NewUserRepo(reloaded).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, 150000.0, u.MonthlySalary)

	goals, err := NewGoalRepo(reloaded).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 100000.0, goals[0].TargetAmount)
}

func TestExpenseRepo_UpdateTouchesTimestamp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewExpenseRepo(store, clock)
	require.NoError(t, repo.Add(ctx, sampleExpense("e1")))

	clock.SetNow(clock.FixedNow.Add(48 * time.Hour))
	defer clock.SetNow(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))

	amount := 30000.0
	ok, err := repo.Update(ctx, "e1", expense.Patch{Amount: &amount})
	require.NoError(t, err)
	require.True(t, ok)

	expenses, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, expenses[0].Amount)
	assert.Equal(t, clock.FixedNow, expenses[0].UpdatedAt)
}

func TestExpenseRepo_DeleteUnknownId(t *testing.T) {
	store, _ := newTestStore(t)

	ok, err := NewExpenseRepo(store, clock).Delete(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGoalRepo_SetReplacesSameMonth(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewGoalRepo(store)

	require.NoError(t, repo.Set(ctx, goal.MonthlyGoal{ID: "g1", Month: 3, Year: 2024, TargetAmount: 100000}))
	require.NoError(t, repo.Set(ctx, goal.MonthlyGoal{ID: "g2", Month: 3, Year: 2024, TargetAmount: 80000}))
	require.NoError(t, repo.Set(ctx, goal.MonthlyGoal{ID: "g3", Month: 4, Year: 2024, TargetAmount: 90000}))

	goals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
	assert.Equal(t, "g2", goals[0].ID)
}

func TestCardRepo_BenefitLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	repo := NewCardRepo(store)
	require.NoError(t, repo.Store(ctx, card.CreditCard{
		ID: "c1", Name: "Gold", Bank: "Galicia", Brand: card.BrandVisa,
		LastFourDigits: "4321", ClosingDay: 4, PaymentDay: 20,
	}))

	ok, err := repo.AddBenefit(ctx, "c1", card.CardBenefit{ID: "b1", CardID: "c1", Description: "Fuel discount"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.DeleteBenefit(ctx, "c1", "b1")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.DeleteBenefit(ctx, "c1", "b1")
	require.NoError(t, err)
	assert.False(t, ok)

	cards, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Empty(t, cards[0].Benefits)
}

func TestWipe_RestoresDefaults(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, NewExpenseRepo(store, clock).Add(ctx, sampleExpense("e1")))
	require.NoError(t, NewUserRepo(store).Save(ctx, user.User{ID: "u1", Name: "Leo"}))

	require.NoError(t, store.Wipe(ctx))

	expenses, err := NewExpenseRepo(store, clock).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, expenses)

	u, err := NewUserRepo(store).Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	categories, err := NewCategoryRepo(store).List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 8)
}
