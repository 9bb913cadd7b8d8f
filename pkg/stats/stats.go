package stats

import (
	"sort"
	"time"

	"github.com/Leonardo-MT93/finanzas/pkg/category"
	"github.com/Leonardo-MT93/finanzas/pkg/expense"
)

// MonthGroup is one calendar month's aggregate.
type MonthGroup struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// CategoryStat is one category's share of the current month's spending.
type CategoryStat struct {
	Category   category.Category `json:"category"`
	Total      float64           `json:"total"`
	Count      int               `json:"count"`
	Percentage float64           `json:"percentage"`
}

type RecencyBucket string

const (
	BucketToday     RecencyBucket = "today"
	BucketYesterday RecencyBucket = "yesterday"
	BucketThisWeek  RecencyBucket = "this_week"
	BucketEarlier   RecencyBucket = "earlier"
)

type RecencyGroup struct {
	Bucket   RecencyBucket     `json:"bucket"`
	Expenses []expense.Expense `json:"expenses"`
	Total    float64           `json:"total"`
}

// Projection is the recurring charge forecast for the upcoming month.
// SharedSubscriptions is the subset of Subscriptions flagged as shared.
type Projection struct {
	Subscriptions       []expense.Expense `json:"subscriptions"`
	PendingInstallments []expense.Expense `json:"pending_installments"`
	SharedSubscriptions []expense.Expense `json:"shared_subscriptions"`
	TotalARS            float64           `json:"total_ars"`
	TotalUSD            float64           `json:"total_usd"`
}

type MonthlySummary struct {
	CurrentTotal       float64        `json:"current_total"`
	PreviousTotal      float64        `json:"previous_total"`
	ChangeFromPrevious float64        `json:"change_from_previous"`
	DailyAverage       float64        `json:"daily_average"`
	AvailableBalance   float64        `json:"available_balance"`
	Categories         []CategoryStat `json:"categories"`
}

// TotalForMonth sums the amounts of expenses dated in the given month.
func TotalForMonth(expenses []expense.Expense, year int, month time.Month) float64 {
	var total float64
	for _, e := range expenses {
		if e.InMonth(year, month) {
			total += e.Amount
		}
	}
	return total
}

// MonthlyTotal is TotalForMonth for the month containing now.
func MonthlyTotal(expenses []expense.Expense, now time.Time) float64 {
	return TotalForMonth(expenses, now.Year(), now.Month())
}

// DailyAverage divides the current month's total by the number of days
// elapsed so far. A month with no expenses averages to zero even on day one.
func DailyAverage(expenses []expense.Expense, now time.Time) float64 {
	total := MonthlyTotal(expenses, now)
	if total == 0 {
		return 0
	}
	return total / float64(now.Day())
}

// AvailableBalance is the salary minus this month's debit spending. Credit
// purchases do not reduce it until they hit the card statement.
func AvailableBalance(salary float64, expenses []expense.Expense, now time.Time) float64 {
	balance := salary
	for _, e := range expenses {
		if e.PaymentMethod == expense.PaymentDebit && e.InMonth(now.Year(), now.Month()) {
			balance -= e.Amount
		}
	}
	return balance
}

// MonthOverMonthChange returns the percentage change between two month
// totals. A zero previous month yields zero, not infinity.
func MonthOverMonthChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

func previousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// MonthlyHistory groups all expenses by calendar month, newest first,
// capped at the six most recent months that have any expenses.
func MonthlyHistory(expenses []expense.Expense, limit int) []MonthGroup {
	type key struct {
		year  int
		month time.Month
	}
	groups := make(map[key]*MonthGroup)
	for _, e := range expenses {
		k := key{e.Date.Year(), e.Date.Month()}
		g, ok := groups[k]
		if !ok {
			g = &MonthGroup{Year: k.year, Month: int(k.month)}
			groups[k] = g
		}
		g.Total += e.Amount
		g.Count++
	}

	history := make([]MonthGroup, 0, len(groups))
	for _, g := range groups {
		history = append(history, *g)
	}
	sort.Slice(history, func(i, j int) bool {
		if history[i].Year != history[j].Year {
			return history[i].Year > history[j].Year
		}
		return history[i].Month > history[j].Month
	})
	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history
}

// CategoryBreakdown aggregates the current month's spending per category.
// Categories with nothing spent are omitted; the result is sorted by total
// descending. Expenses referencing an unknown category keep their raw key.
func CategoryBreakdown(expenses []expense.Expense, categories []category.Category, now time.Time) []CategoryStat {
	known := make(map[string]category.Category, len(categories))
	for _, c := range categories {
		known[c.ID] = c
	}

	totals := make(map[string]*CategoryStat)
	order := make([]string, 0)
	var monthTotal float64
	for _, e := range expenses {
		if !e.InMonth(now.Year(), now.Month()) {
			continue
		}
		stat, ok := totals[e.Category]
		if !ok {
			c, found := known[e.Category]
			if !found {
				c = category.Category{ID: e.Category, Name: e.Category}
			}
			stat = &CategoryStat{Category: c}
			totals[e.Category] = stat
			order = append(order, e.Category)
		}
		stat.Total += e.Amount
		stat.Count++
		monthTotal += e.Amount
	}

	breakdown := make([]CategoryStat, 0, len(order))
	for _, id := range order {
		stat := *totals[id]
		if monthTotal > 0 {
			stat.Percentage = stat.Total / monthTotal * 100
		}
		breakdown = append(breakdown, stat)
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})
	return breakdown
}

// civilDaysBetween counts whole calendar days from a to b, ignoring the time
// of day on either side.
func civilDaysBetween(a, b time.Time) int {
	from := expense.NormalizeDate(a)
	to := expense.NormalizeDate(b)
	return int(to.Sub(from) / (24 * time.Hour))
}

// bucketFor maps an expense date to its recency label. Future dates land in
// "today" rather than producing a negative bucket.
func bucketFor(date, now time.Time) RecencyBucket {
	days := civilDaysBetween(date, now)
	switch {
	case days <= 0:
		return BucketToday
	case days == 1:
		return BucketYesterday
	case days <= 7:
		return BucketThisWeek
	default:
		return BucketEarlier
	}
}

// GroupByRecency splits expenses into today / yesterday / this week /
// earlier buckets. Buckets appear in the order they are first encountered,
// so callers should pass the list already sorted newest first.
func GroupByRecency(expenses []expense.Expense, now time.Time) []RecencyGroup {
	index := make(map[RecencyBucket]int)
	groups := make([]RecencyGroup, 0, 4)
	for _, e := range expenses {
		bucket := bucketFor(e.Date, now)
		i, ok := index[bucket]
		if !ok {
			i = len(groups)
			index[bucket] = i
			groups = append(groups, RecencyGroup{Bucket: bucket, Expenses: []expense.Expense{}})
		}
		groups[i].Expenses = append(groups[i].Expenses, e)
		groups[i].Total += e.Amount
	}
	return groups
}

// NextMonthProjection collects the charges that will recur next month:
// active subscriptions and installment purchases with payments left. The
// per-currency totals cover both sets.
func NextMonthProjection(expenses []expense.Expense) Projection {
	projection := Projection{
		Subscriptions:       []expense.Expense{},
		PendingInstallments: []expense.Expense{},
		SharedSubscriptions: []expense.Expense{},
	}
	for _, e := range expenses {
		switch {
		case e.IsActiveSubscription():
			projection.Subscriptions = append(projection.Subscriptions, e)
		case e.HasPendingInstallments():
			projection.PendingInstallments = append(projection.PendingInstallments, e)
		default:
			continue
		}
		switch e.Currency {
		case expense.CurrencyUSD:
			projection.TotalUSD += e.Amount
		default:
			projection.TotalARS += e.Amount
		}
	}
	for _, e := range expenses {
		if e.IsShared && e.Type == expense.TypeSubscription {
			projection.SharedSubscriptions = append(projection.SharedSubscriptions, e)
		}
	}
	return projection
}
