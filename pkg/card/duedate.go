package card

import (
	"math"
	"time"
)

// Status is a presentation hint derived from days-left; it gates nothing.
type Status string

const (
	StatusUrgent Status = "urgent"
	StatusSoon   Status = "soon"
	StatusNormal Status = "normal"
)

// PaymentDaysLeft returns the inclusive number of calendar days until the
// card's next payment day. 0 means the payment is due today.
func PaymentDaysLeft(c CreditCard, now time.Time) int {
	return daysUntilDayOfMonth(c.PaymentDay, now)
}

// ClosingDaysLeft returns the inclusive number of calendar days until the
// card's next closing day.
func ClosingDaysLeft(c CreditCard, now time.Time) int {
	return daysUntilDayOfMonth(c.ClosingDay, now)
}

// daysUntilDayOfMonth: if the target day is still ahead in the current month
// the difference of day numbers is exact; otherwise the target is that day in
// the following month, counted with real calendar arithmetic (a day past the
// month's end normalizes forward, like day 31 of a 30-day month) and rounded
// up on partial days.
func daysUntilDayOfMonth(day int, now time.Time) int {
	current := now.Day()
	if current <= day {
		return day - current
	}
	next := time.Date(now.Year(), now.Month()+1, day, 0, 0, 0, 0, now.Location())
	return int(math.Ceil(float64(next.Sub(now)) / float64(24*time.Hour)))
}

func StatusFor(daysLeft int) Status {
	if daysLeft <= 3 {
		return StatusUrgent
	}
	if daysLeft <= 7 {
		return StatusSoon
	}
	return StatusNormal
}

// TodayBenefit pairs a benefit with the card that grants it.
type TodayBenefit struct {
	Card    CreditCard  `json:"card"`
	Benefit CardBenefit `json:"benefit"`
}

// TodaysBenefits collects every benefit bound to today's weekday.
func TodaysBenefits(cards []CreditCard, now time.Time) []TodayBenefit {
	today := int(now.Weekday())
	benefits := make([]TodayBenefit, 0)
	for _, c := range cards {
		for _, b := range c.Benefits {
			if b.DayOfWeek != nil && *b.DayOfWeek == today {
				benefits = append(benefits, TodayBenefit{Card: c, Benefit: b})
			}
		}
	}
	return benefits
}
