package booking

import (
	"context"

	"venuebook/internal/domain"
	"venuebook/internal/repository"
)

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64) ([]repository.UserBookingRow, error)
}

// VenueReader resolves the venue being booked
type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}
