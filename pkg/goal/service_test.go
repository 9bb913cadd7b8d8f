package goal

import (
	"context"
	"testing"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T) (Service, *StubGoalRepo, *expense.StubLedger, context.Context, func()) {
	repo := NewStubGoalRepo()
	ledger := expense.NewStubLedger()
	service := NewServiceImpl(repo, ledger, clock)
	return service, repo, ledger, context.Background(), func() {
		repo.Cleanup()
		ledger.Cleanup()
		clock.SetNow(time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))
	}
}

func addSpending(t *testing.T, ledger *expense.StubLedger, ctx context.Context, amount float64, date time.Time) {
	t.Helper()
	err := ledger.Add(ctx, expense.Expense{
		Description:   "spending",
		Amount:        amount,
		Currency:      expense.CurrencyARS,
		Category:      "1",
		Type:          expense.TypeSingle,
		PaymentMethod: expense.PaymentDebit,
		Date:          date,
	})
	require.NoError(t, err)
}

func TestSetCurrent_SnapshotsSpending(t *testing.T) {
	service, _, ledger, ctx, teardown := setup(t)
	defer teardown()

	addSpending(t, ledger, ctx, 30000, clock.FixedNow)
	addSpending(t, ledger, ctx, 5000, clock.FixedNow.AddDate(0, -1, 0))

	g, err := service.SetCurrent(ctx, 100000)

	require.NoError(t, err)
	assert.NotEmpty(t, g.ID)
	assert.Equal(t, 3, g.Month)
	assert.Equal(t, 2024, g.Year)
	assert.Equal(t, 100000.0, g.TargetAmount)
	assert.Equal(t, 30000.0, g.CurrentAmount, "only the current month is snapshotted")
}

func TestSetCurrent_ReplacesSameMonth(t *testing.T) {
	service, repo, _, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.SetCurrent(ctx, 100000)
	require.NoError(t, err)
	_, err = service.SetCurrent(ctx, 80000)
	require.NoError(t, err)

	goals, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 80000.0, goals[0].TargetAmount)
}

func TestSetCurrent_RejectsNegativeTarget(t *testing.T) {
	service, _, _, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.SetCurrent(ctx, -1)

	assert.Error(t, err)
}

func TestGetCurrent_NoGoal(t *testing.T) {
	service, _, _, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.GetCurrent(ctx)

	assert.ErrorIs(t, err, ErrNoGoal)
}

func TestGetCurrent_RecomputesProgressLive(t *testing.T) {
	service, _, ledger, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.SetCurrent(ctx, 100000)
	require.NoError(t, err)

	// new spending after the goal was saved
	addSpending(t, ledger, ctx, 40000, clock.FixedNow)

	progress, err := service.GetCurrent(ctx)

	require.NoError(t, err)
	assert.Equal(t, 40000.0, progress.Spent)
	assert.Equal(t, 0.0, progress.Goal.CurrentAmount, "stored snapshot stays as saved")
	assert.Equal(t, 40.0, progress.Percentage)
	assert.Equal(t, 60000.0, progress.Remaining)
	// March has 31 days, 21 remain after the 10th
	assert.Equal(t, 21, progress.DaysRemaining)
	assert.InDelta(t, 60000.0/21, progress.DailyBudget, 0.001)
	assert.False(t, progress.OverBudget)
}

func TestGetCurrent_OverBudgetCapsPercentage(t *testing.T) {
	service, _, ledger, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.SetCurrent(ctx, 10000)
	require.NoError(t, err)
	addSpending(t, ledger, ctx, 25000, clock.FixedNow)

	progress, err := service.GetCurrent(ctx)

	require.NoError(t, err)
	assert.Equal(t, 100.0, progress.Percentage)
	assert.True(t, progress.OverBudget)
	assert.Equal(t, -15000.0, progress.Remaining)
}

func TestGetCurrent_LastDayOfMonthBudgetsOneDay(t *testing.T) {
	service, _, ledger, ctx, teardown := setup(t)
	defer teardown()

	clock.SetNow(time.Date(2024, time.March, 31, 9, 0, 0, 0, time.UTC))
	_, err := service.SetCurrent(ctx, 10000)
	require.NoError(t, err)
	addSpending(t, ledger, ctx, 4000, clock.FixedNow)

	progress, err := service.GetCurrent(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, progress.DaysRemaining)
	assert.Equal(t, 6000.0, progress.DailyBudget, "the remainder is budgeted to the last day")
}
