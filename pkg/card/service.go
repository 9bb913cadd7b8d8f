package card

import (
	"context"
	"fmt"

	"github.com/Leonardo-MT93/finanzas/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	GetAll(ctx context.Context) ([]CreditCard, error)
	Create(ctx context.Context, c CreditCard) (CreditCard, error)
	Update(ctx context.Context, id string, patch Patch) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AddBenefit(ctx context.Context, cardID string, benefit CardBenefit) (CardBenefit, bool, error)
	RemoveBenefit(ctx context.Context, cardID string, benefitID string) (bool, error)
	Statuses(ctx context.Context) ([]CardStatus, error)
	TodaysBenefits(ctx context.Context) ([]TodayBenefit, error)
}

// CardStatus is the due-date view of one card.
type CardStatus struct {
	Card            CreditCard `json:"card"`
	ClosingDaysLeft int        `json:"closing_days_left"`
	PaymentDaysLeft int        `json:"payment_days_left"`
	ClosingStatus   Status     `json:"closing_status"`
	PaymentStatus   Status     `json:"payment_status"`
}

type ServiceImpl struct {
	repo  Repository
	clock utils.Clock
}

func NewServiceImpl(repo Repository, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{repo: repo, clock: clock}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]CreditCard, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Create(ctx context.Context, c CreditCard) (CreditCard, error) {
	if err := c.Validate(); err != nil {
		return CreditCard{}, fmt.Errorf("invalid card: %w", err)
	}

	c.ID = uuid.NewString()
	c.CreatedAt = s.clock.Now()
	if c.Benefits == nil {
		c.Benefits = []CardBenefit{}
	}
	for i := range c.Benefits {
		c.Benefits[i].ID = uuid.NewString()
		c.Benefits[i].CardID = c.ID
	}

	if err := s.repo.Store(ctx, c); err != nil {
		return CreditCard{}, fmt.Errorf("failed to store card: %w", err)
	}
	log.Debugf("created card %s (%s %s)", c.ID, c.Bank, c.Name)
	return c, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, patch Patch) (bool, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return false, fmt.Errorf("failed to update card: %w", err)
	}
	if !updated {
		log.Warnf("card %s not updated, it does not exist", id)
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete card: %w", err)
	}
	if !deleted {
		log.Warnf("card %s not deleted, it does not exist", id)
	}
	return deleted, nil
}

func (s *ServiceImpl) AddBenefit(ctx context.Context, cardID string, benefit CardBenefit) (CardBenefit, bool, error) {
	if benefit.DayOfWeek != nil && (*benefit.DayOfWeek < 0 || *benefit.DayOfWeek > 6) {
		return CardBenefit{}, false, fmt.Errorf("day of week %d out of range 0..6", *benefit.DayOfWeek)
	}
	benefit.ID = uuid.NewString()
	benefit.CardID = cardID

	ok, err := s.repo.AddBenefit(ctx, cardID, benefit)
	if err != nil {
		return CardBenefit{}, false, fmt.Errorf("failed to add benefit: %w", err)
	}
	return benefit, ok, nil
}

func (s *ServiceImpl) RemoveBenefit(ctx context.Context, cardID string, benefitID string) (bool, error) {
	ok, err := s.repo.DeleteBenefit(ctx, cardID, benefitID)
	if err != nil {
		return false, fmt.Errorf("failed to delete benefit: %w", err)
	}
	return ok, nil
}

func (s *ServiceImpl) Statuses(ctx context.Context) ([]CardStatus, error) {
	cards, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	now := s.clock.Now()
	statuses := make([]CardStatus, 0, len(cards))
	for _, c := range cards {
		closingDays := ClosingDaysLeft(c, now)
		paymentDays := PaymentDaysLeft(c, now)
		statuses = append(statuses, CardStatus{
			Card:            c,
			ClosingDaysLeft: closingDays,
			PaymentDaysLeft: paymentDays,
			ClosingStatus:   StatusFor(closingDays),
			PaymentStatus:   StatusFor(paymentDays),
		})
	}
	return statuses, nil
}

func (s *ServiceImpl) TodaysBenefits(ctx context.Context) ([]TodayBenefit, error) {
	cards, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return TodaysBenefits(cards, s.clock.Now()), nil
}
