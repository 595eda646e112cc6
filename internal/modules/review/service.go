package review

import (
	"context"
	"errors"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"gorm.io/gorm"
)

// BookingGate resolves the booking a review is attached to.
type BookingGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Service struct {
	reviews  *repository.ReviewRepository
	bookings BookingGate
}

func NewService(reviews *repository.ReviewRepository, bookings BookingGate) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// Create attaches a review to a booking. The booking must belong to
// the caller and reference the same venue; anyone else is rejected.
func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*domain.Review, error) {
	if userID <= 0 || req.BookingID <= 0 || req.VenueID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID || b.VenueID != req.VenueID {
		return nil, ErrNotAllowed
	}

	rv := &domain.Review{
		BookingID: req.BookingID,
		UserID:    userID,
		VenueID:   req.VenueID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByVenue(ctx context.Context, venueID int64, limit, offset int) ([]domain.Review, error) {
	if venueID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.GetByVenue(ctx, venueID, limit, offset)
}
