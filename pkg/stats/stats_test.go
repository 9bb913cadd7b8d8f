package stats

import (
	"testing"
	"time"

	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func debitExpense(amount float64, categoryID string, date time.Time) expense.Expense {
	return expense.Expense{
		Description:   "test expense",
		Amount:        amount,
		Currency:      expense.CurrencyARS,
		Category:      categoryID,
		Type:          expense.TypeSingle,
		PaymentMethod: expense.PaymentDebit,
		Date:          date,
	}
}

func creditExpense(amount float64, date time.Time) expense.Expense {
	e := debitExpense(amount, "5", date)
	e.PaymentMethod = expense.PaymentCredit
	return e
}

func TestAvailableBalance(t *testing.T) {
	expenses := []expense.Expense{
		debitExpense(10000, "1", now),
		debitExpense(5000, "2", now.AddDate(0, 0, -3)),
		creditExpense(20000, now),                    // credit does not reduce the balance
		debitExpense(7000, "1", now.AddDate(0, -1, 0)), // previous month is out of scope
	}

	balance := AvailableBalance(150000, expenses, now)

	assert.Equal(t, 135000.0, balance)
}

func TestDailyAverage(t *testing.T) {
	t.Run("divides by days elapsed", func(t *testing.T) {
		expenses := []expense.Expense{debitExpense(30000, "1", now)}
		assert.Equal(t, 2000.0, DailyAverage(expenses, now))
	})
	t.Run("empty month averages to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DailyAverage(nil, now))
	})
}

func TestMonthOverMonthChange(t *testing.T) {
	assert.Equal(t, 50.0, MonthOverMonthChange(150, 100))
	assert.Equal(t, -25.0, MonthOverMonthChange(75, 100))
	assert.Equal(t, 0.0, MonthOverMonthChange(100, 0), "no previous month means no change, not infinity")
}

func TestMonthlyHistory_CappedAndSortedNewestFirst(t *testing.T) {
	var expenses []expense.Expense
	for i := 0; i < 8; i++ {
		expenses = append(expenses, debitExpense(1000, "1", now.AddDate(0, -i, 0)))
	}

	history := MonthlyHistory(expenses, 6)

	assert.Len(t, history, 6)
	assert.Equal(t, 2024, history[0].Year)
	assert.Equal(t, 3, history[0].Month)
	assert.Equal(t, 2023, history[5].Year)
	assert.Equal(t, 10, history[5].Month)
}

func TestCategoryBreakdown(t *testing.T) {
	categories := category.Defaults()
	expenses := []expense.Expense{
		debitExpense(6000, "1", now),
		debitExpense(2000, "1", now.AddDate(0, 0, -1)),
		debitExpense(2000, "2", now),
		debitExpense(9999, "2", now.AddDate(0, -1, 0)), // previous month is ignored
	}

	breakdown := CategoryBreakdown(expenses, categories, now)

	assert.Len(t, breakdown, 2, "categories with no spending are omitted")
	assert.Equal(t, "Comida", breakdown[0].Category.Name)
	assert.Equal(t, 8000.0, breakdown[0].Total)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.InDelta(t, 80.0, breakdown[0].Percentage, 0.001)
	assert.InDelta(t, 20.0, breakdown[1].Percentage, 0.001)
}

func TestCategoryBreakdown_UnknownCategoryKeepsKey(t *testing.T) {
	breakdown := CategoryBreakdown([]expense.Expense{debitExpense(500, "no-such-id", now)}, category.Defaults(), now)

	assert.Len(t, breakdown, 1)
	assert.Equal(t, "no-such-id", breakdown[0].Category.Name)
	assert.InDelta(t, 100.0, breakdown[0].Percentage, 0.001)
}

func TestGroupByRecency(t *testing.T) {
	expenses := []expense.Expense{
		debitExpense(100, "1", now),
		debitExpense(150, "1", now.AddDate(0, 0, 2)), // future dates count as today
		debitExpense(200, "1", now.AddDate(0, 0, -1)),
		debitExpense(300, "1", now.AddDate(0, 0, -5)),
		debitExpense(400, "1", now.AddDate(0, 0, -20)),
	}

	groups := GroupByRecency(expenses, now)

	assert.Len(t, groups, 4)
	assert.Equal(t, BucketToday, groups[0].Bucket)
	assert.Equal(t, 250.0, groups[0].Total)
	assert.Equal(t, BucketYesterday, groups[1].Bucket)
	assert.Equal(t, BucketThisWeek, groups[2].Bucket)
	assert.Equal(t, BucketEarlier, groups[3].Bucket)
}

func TestNextMonthProjection(t *testing.T) {
	activeSub := expense.Expense{
		Amount: 5000, Currency: expense.CurrencyARS, Type: expense.TypeSubscription,
		PaymentMethod: expense.PaymentCredit, Date: now,
		Subscription: &expense.SubscriptionData{ServiceName: "Netflix", IsActive: true},
	}
	sharedSub := activeSub
	sharedSub.IsShared = true
	sharedSub.Amount = 12
	sharedSub.Currency = expense.CurrencyUSD
	cancelledShared := expense.Expense{
		Amount: 900, Currency: expense.CurrencyARS, Type: expense.TypeSubscription,
		PaymentMethod: expense.PaymentCredit, Date: now, IsShared: true,
		Subscription: &expense.SubscriptionData{ServiceName: "Spotify", IsActive: false},
	}
	pendingInst := expense.Expense{
		Amount: 25000, Currency: expense.CurrencyARS, Type: expense.TypeInstallment,
		PaymentMethod: expense.PaymentCredit, Date: now,
		Installment: &expense.InstallmentData{TotalAmount: 150000, TotalInstallments: 6, CurrentInstallment: 2},
	}
	paidInst := pendingInst
	paidInst.Installment = &expense.InstallmentData{TotalAmount: 150000, TotalInstallments: 6, CurrentInstallment: 6}
	single := debitExpense(100, "1", now)

	projection := NextMonthProjection([]expense.Expense{activeSub, sharedSub, cancelledShared, pendingInst, paidInst, single})

	assert.Len(t, projection.Subscriptions, 2)
	assert.Len(t, projection.PendingInstallments, 1)
	assert.Equal(t, 30000.0, projection.TotalARS)
	assert.Equal(t, 12.0, projection.TotalUSD)
	// shared covers inactive subscriptions too
	assert.Len(t, projection.SharedSubscriptions, 2)
}
