package card

import (
	"context"
	"fmt"
	"time"
)

type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
)

// CardBenefit is a day-of-week discount rule attached to a card.
// DayOfWeek is 0=Sunday..6=Saturday; nil means the benefit is not day-bound.
type CardBenefit struct {
	ID                 string  `json:"id"`
	CardID             string  `json:"card_id"`
	Description        string  `json:"description"`
	DayOfWeek          *int    `json:"day_of_week,omitempty"`
	Merchant           string  `json:"merchant,omitempty"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
}

type CreditCard struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Bank           string        `json:"bank"`
	Brand          Brand         `json:"brand"`
	LastFourDigits string        `json:"last_four_digits"`
	ClosingDay     int           `json:"closing_day"`
	PaymentDay     int           `json:"payment_day"`
	CreditLimit    float64       `json:"credit_limit,omitempty"`
	Benefits       []CardBenefit `json:"benefits"`
	Color          string        `json:"color"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (c CreditCard) Validate() error {
	switch c.Brand {
	case BrandVisa, BrandMastercard, BrandAmex:
	default:
		return fmt.Errorf("unknown card brand: %q", c.Brand)
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return fmt.Errorf("closing day %d out of range 1..31", c.ClosingDay)
	}
	if c.PaymentDay < 1 || c.PaymentDay > 31 {
		return fmt.Errorf("payment day %d out of range 1..31", c.PaymentDay)
	}
	return nil
}

// Clone returns a deep copy including the benefits sub-collection.
func (c CreditCard) Clone() CreditCard {
	benefits := make([]CardBenefit, len(c.Benefits))
	for i, b := range c.Benefits {
		if b.DayOfWeek != nil {
			day := *b.DayOfWeek
			b.DayOfWeek = &day
		}
		benefits[i] = b
	}
	c.Benefits = benefits
	return c
}

// Patch carries a partial card update; nil fields are left untouched.
// The benefits sub-collection has its own operations and is never patched.
type Patch struct {
	Name           *string
	Bank           *string
	Brand          *Brand
	LastFourDigits *string
	ClosingDay     *int
	PaymentDay     *int
	CreditLimit    *float64
	Color          *string
}

func (p Patch) Apply(c *CreditCard) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Bank != nil {
		c.Bank = *p.Bank
	}
	if p.Brand != nil {
		c.Brand = *p.Brand
	}
	if p.LastFourDigits != nil {
		c.LastFourDigits = *p.LastFourDigits
	}
	if p.ClosingDay != nil {
		c.ClosingDay = *p.ClosingDay
	}
	if p.PaymentDay != nil {
		c.PaymentDay = *p.PaymentDay
	}
	if p.CreditLimit != nil {
		c.CreditLimit = *p.CreditLimit
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
}

type Repository interface {
	GetAll(ctx context.Context) ([]CreditCard, error)
	Store(ctx context.Context, c CreditCard) error
	Update(ctx context.Context, id string, patch Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AddBenefit(ctx context.Context, cardID string, benefit CardBenefit) (bool, error)
	DeleteBenefit(ctx context.Context, cardID string, benefitID string) (bool, error)
}
