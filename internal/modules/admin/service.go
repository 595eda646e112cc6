package admin

import (
	"context"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/repository"
)

type Service struct {
	venues   *repository.VenueRepository
	bookings *repository.BookingRepository
	users    *repository.UserRepository
}

func NewService(venues *repository.VenueRepository, bookings *repository.BookingRepository, users *repository.UserRepository) *Service {
	return &Service{venues: venues, bookings: bookings, users: users}
}

func (s *Service) PendingVenues(ctx context.Context) ([]repository.PendingVenueRow, error) {
	return s.venues.ListPendingWithOwner(ctx)
}

// SetVenueStatus moves a venue out of the approval queue. Only
// approved and rejected are accepted; there is no way back to pending.
func (s *Service) SetVenueStatus(ctx context.Context, id int64, status string) error {
	st := domain.VenueStatus(status)
	if st != domain.VenueApproved && st != domain.VenueRejected {
		return ErrInvalidStatus
	}

	affected, err := s.venues.UpdateStatus(ctx, id, st)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) ListBookings(ctx context.Context) ([]repository.AdminBookingRow, error) {
	return s.bookings.ListWithDetails(ctx)
}

func (s *Service) SetBookingStatus(ctx context.Context, id int64, status string) error {
	st := domain.BookingStatus(status)
	if st != domain.BookingConfirmed && st != domain.BookingCancelled {
		return ErrInvalidStatus
	}

	affected, err := s.bookings.UpdateStatus(ctx, id, st)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// SetBookingPayment moves the payment field independently of the
// booking status.
func (s *Service) SetBookingPayment(ctx context.Context, id int64, status string) error {
	st := domain.PaymentStatus(status)
	if st != domain.PaymentPaid && st != domain.PaymentRefunded {
		return ErrInvalidStatus
	}

	affected, err := s.bookings.UpdatePaymentStatus(ctx, id, st)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	db := s.venues.DB().WithContext(ctx)
	var stats Stats

	if err := db.Model(&domain.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Venue{}).Count(&stats.TotalVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Venue{}).
		Where("status = ?", domain.VenuePending).
		Count(&stats.PendingVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Booking{}).Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if err := db.Model(&domain.Booking{}).
		Where("created_at >= ?", today).
		Count(&stats.TodayBookings).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&domain.Booking{}).
		Where("status <> ?", domain.BookingCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
