package user

import (
	"context"
	"testing"
	"time"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

func setup(t *testing.T) (Service, context.Context, func()) {
	repo := NewStubUserRepo()
	service := NewService(repo, clock)
	return service, context.Background(), func() {
		repo.Cleanup()
		clock.SetNow(time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC))
	}
}

func TestCurrent_NotConfigured(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	_, err := service.Current(ctx)

	assert.ErrorIs(t, err, ErrUserNotConfigured)
}

func TestUpdate_FirstSaveCreatesProfile(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	saved, err := service.Update(ctx, User{Name: "Leo", Email: "leo@example.com", MonthlySalary: 150000})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, clock.FixedNow, saved.CreatedAt)
	assert.Equal(t, clock.FixedNow, saved.UpdatedAt)
	assert.Equal(t, expense.CurrencyARS, saved.PreferredCurrency, "currency defaults to ARS")
}

func TestUpdate_PreservesIdentityOnEdit(t *testing.T) {
	service, ctx, teardown := setup(t)
	defer teardown()

	first, err := service.Update(ctx, User{Name: "Leo"})
	require.NoError(t, err)

	clock.SetNow(clock.FixedNow.Add(time.Hour))
	second, err := service.Update(ctx, User{Name: "Leonardo", MonthlySalary: 200000})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

	current, err := service.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Leonardo", current.Name)
	assert.Equal(t, 200000.0, current.MonthlySalary)
}
