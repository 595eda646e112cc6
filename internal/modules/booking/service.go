package booking

import (
	"context"
	"errors"
	"math"

	"venuebook/internal/domain"
	"venuebook/internal/pkg/validator"
	"venuebook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	venues   VenueReader
}

func NewService(bookings BookingRepository, venues VenueReader) *Service {
	return &Service{bookings: bookings, venues: venues}
}

// CreateBooking validates the date range against the venue, recomputes
// the total server-side and inserts pending/pending. The client total
// is rejected on mismatch rather than trusted, and overlapping dates
// on the same venue fail with ErrDateConflict.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := parseDate(req.CheckInDate)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := parseDate(req.CheckOutDate)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	venue, err := s.venues.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	if venue.Status != domain.VenueApproved {
		return nil, ErrVenueNotFound
	}

	b := &domain.Booking{
		VenueID:       venue.ID,
		UserID:        userID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentPending,
	}

	expected := float64(b.Nights()) * venue.PricePerNight
	expected = math.Round(expected*100) / 100
	if math.Abs(expected-req.TotalPrice) > 0.01 {
		return nil, ErrPriceMismatch
	}
	b.TotalPrice = expected

	if fields := validator.Validate(b); fields != nil {
		return nil, ErrValidation
	}

	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDateConflict) {
			return nil, ErrDateConflict
		}
		return nil, err
	}

	return b, nil
}

// UserBookings returns the user's bookings joined with venue display
// fields, newest first. actorID must be the same user or an admin.
func (s *Service) UserBookings(ctx context.Context, actorID int64, actorRole string, userID int64) ([]repository.UserBookingRow, error) {
	if actorID != userID && actorRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return s.bookings.GetByUserID(ctx, userID)
}
