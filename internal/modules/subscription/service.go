package subscription

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	subs   *repository.SubscriptionRepository
	owners *repository.VenueOwnerRepository
}

func NewService(subs *repository.SubscriptionRepository, owners *repository.VenueOwnerRepository) *Service {
	return &Service{subs: subs, owners: owners}
}

func (s *Service) Create(ctx context.Context, req CreateSubscriptionRequest) (*domain.Subscription, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil || !end.After(start) {
		return nil, ErrValidation
	}

	if _, err := s.owners.GetByID(ctx, req.VenueOwnerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	sub := &domain.Subscription{
		ID:           uuid.NewString(),
		VenueOwnerID: req.VenueOwnerID,
		Type:         domain.SubscriptionType(req.Type),
		Price:        req.Price,
		StartDate:    start,
		EndDate:      end,
		Status:       domain.SubscriptionActive,
	}

	if err := s.subs.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Subscription, error) {
	return s.subs.List(ctx)
}

// SetStatus is the only transition point for a subscription; there is
// no automatic expiry inside the API process.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	st := domain.SubscriptionStatus(status)
	if st != domain.SubscriptionActive && st != domain.SubscriptionExpired && st != domain.SubscriptionCancelled {
		return ErrValidation
	}

	affected, err := s.subs.UpdateStatus(ctx, id, st)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
