package expense

import (
	"fmt"
	"time"
)

type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

type Type string

const (
	TypeSingle       Type = "single"
	TypeInstallment  Type = "installment"
	TypeSubscription Type = "subscription"
)

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

// InstallmentData tracks a purchase split into fixed monthly payments.
// InstallmentValue is always TotalAmount / TotalInstallments, recomputed on
// admission rather than taken from the caller.
type InstallmentData struct {
	TotalAmount        float64   `json:"total_amount"`
	InstallmentValue   float64   `json:"installment_value"`
	TotalInstallments  int       `json:"total_installments"`
	CurrentInstallment int       `json:"current_installment"`
	FirstPaymentDate   time.Time `json:"first_payment_date"`
}

type SubscriptionData struct {
	ServiceName string `json:"service_name"`
	BillingDay  int    `json:"billing_day,omitempty"` // 1-31, 0 when not set
	IsActive    bool   `json:"is_active"`
}

// Expense is a single financial event. The variant payloads are mandatory for
// their expense type and forbidden otherwise; Validate enforces that on
// admission so a "single" expense can never carry stray installment data.
type Expense struct {
	ID            string            `json:"id"`
	Description   string            `json:"description"`
	Amount        float64           `json:"amount"`
	Currency      Currency          `json:"currency"`
	Category      string            `json:"category"`
	Type          Type              `json:"expense_type"`
	PaymentMethod PaymentMethod     `json:"payment_method"`
	CardID        string            `json:"card_id,omitempty"`
	Date          time.Time         `json:"date"`
	IsShared      bool              `json:"is_shared"`
	Installment   *InstallmentData  `json:"installment_data,omitempty"`
	Subscription  *SubscriptionData `json:"subscription_data,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (e Expense) Validate() error {
	switch e.Currency {
	case CurrencyARS, CurrencyUSD:
	default:
		return fmt.Errorf("unknown currency: %q", e.Currency)
	}
	switch e.PaymentMethod {
	case PaymentCredit, PaymentDebit:
	default:
		return fmt.Errorf("unknown payment method: %q", e.PaymentMethod)
	}

	switch e.Type {
	case TypeSingle:
		if e.Installment != nil || e.Subscription != nil {
			return fmt.Errorf("single expense must not carry installment or subscription data")
		}
	case TypeInstallment:
		if e.Installment == nil {
			return fmt.Errorf("installment expense requires installment data")
		}
		if e.Subscription != nil {
			return fmt.Errorf("installment expense must not carry subscription data")
		}
		if e.Installment.TotalInstallments < 1 {
			return fmt.Errorf("total installments must be at least 1")
		}
		if e.Installment.CurrentInstallment < 1 || e.Installment.CurrentInstallment > e.Installment.TotalInstallments {
			return fmt.Errorf("current installment %d out of range 1..%d",
				e.Installment.CurrentInstallment, e.Installment.TotalInstallments)
		}
	case TypeSubscription:
		if e.Subscription == nil {
			return fmt.Errorf("subscription expense requires subscription data")
		}
		if e.Installment != nil {
			return fmt.Errorf("subscription expense must not carry installment data")
		}
		if e.Subscription.BillingDay != 0 && (e.Subscription.BillingDay < 1 || e.Subscription.BillingDay > 31) {
			return fmt.Errorf("billing day %d out of range 1..31", e.Subscription.BillingDay)
		}
	default:
		return fmt.Errorf("unknown expense type: %q", e.Type)
	}
	return nil
}

// IsActiveSubscription reports whether the expense is a subscription that is
// still charged every month.
func (e Expense) IsActiveSubscription() bool {
	return e.Type == TypeSubscription && e.Subscription != nil && e.Subscription.IsActive
}

// HasPendingInstallments reports whether the expense is an installment
// purchase that is not yet fully paid.
func (e Expense) HasPendingInstallments() bool {
	return e.Type == TypeInstallment && e.Installment != nil &&
		e.Installment.CurrentInstallment < e.Installment.TotalInstallments
}

// InMonth reports whether the expense date falls in the given calendar month.
func (e Expense) InMonth(year int, month time.Month) bool {
	return e.Date.Year() == year && e.Date.Month() == month
}

// Clone returns a deep copy, so snapshots handed to callers can never alias
// the ledger's variant payloads.
func (e Expense) Clone() Expense {
	if e.Installment != nil {
		installment := *e.Installment
		e.Installment = &installment
	}
	if e.Subscription != nil {
		subscription := *e.Subscription
		e.Subscription = &subscription
	}
	return e
}

// NormalizeDate reduces any instant to its civil calendar date (midnight UTC),
// so that the same day is stored no matter which representation the caller
// submitted the date in.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Description   *string
	Amount        *float64
	Currency      *Currency
	Category      *string
	PaymentMethod *PaymentMethod
	CardID        *string
	Date          *time.Time
	IsShared      *bool
	Installment   *InstallmentData
	Subscription  *SubscriptionData
}

// Apply merges the patch into the expense. Dates are normalized the same way
// as on creation.
func (p Patch) Apply(e *Expense) {
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.PaymentMethod != nil {
		e.PaymentMethod = *p.PaymentMethod
	}
	if p.CardID != nil {
		e.CardID = *p.CardID
	}
	if p.Date != nil {
		e.Date = NormalizeDate(*p.Date)
	}
	if p.IsShared != nil {
		e.IsShared = *p.IsShared
	}
	if p.Installment != nil {
		installment := *p.Installment
		installment.FirstPaymentDate = NormalizeDate(installment.FirstPaymentDate)
		e.Installment = &installment
	}
	if p.Subscription != nil {
		subscription := *p.Subscription
		e.Subscription = &subscription
	}
}
