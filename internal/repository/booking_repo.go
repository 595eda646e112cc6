package repository

import (
	"context"
	"errors"
	"time"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

// ErrDateConflict is returned when the requested date range overlaps an
// existing non-cancelled booking for the same venue.
var ErrDateConflict = errors.New("booking dates conflict with an existing booking")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

// CreateIfAvailable inserts the booking only when no non-cancelled
// booking for the venue overlaps [check_in, check_out). The overlap
// query and the insert run in one transaction so two concurrent
// requests cannot both succeed.
func (r *BookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&domain.Booking{}).
			Where("venue_id = ?", b.VenueID).
			Where("status <> ?", domain.BookingCancelled).
			Where("check_in_date < ? AND check_out_date > ?", b.CheckOutDate, b.CheckInDate).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrDateConflict
		}
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// UserBookingRow carries a booking joined with display fields of its venue.
type UserBookingRow struct {
	ID            int64     `gorm:"column:id" json:"id"`
	VenueID       int64     `gorm:"column:venue_id" json:"venue_id"`
	UserID        int64     `gorm:"column:user_id" json:"user_id"`
	CheckInDate   time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate  time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	TotalPrice    float64   `gorm:"column:total_price" json:"total_price"`
	Status        string    `gorm:"column:status" json:"status"`
	PaymentStatus string    `gorm:"column:payment_status" json:"payment_status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	VenueName     string    `gorm:"column:venue_name" json:"venue_name"`
	VenueType     string    `gorm:"column:venue_type" json:"venue_type"`
	VenueImage    string    `gorm:"column:venue_image" json:"venue_image,omitempty"`
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]UserBookingRow, error) {
	var rows []UserBookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
			venues.name AS venue_name,
			venues.type AS venue_type,
			COALESCE((SELECT url FROM venue_images
				WHERE venue_images.venue_id = venues.id AND venue_images.is_primary
				LIMIT 1), '') AS venue_image`).
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// AdminBookingRow is a booking joined with venue and customer info for
// the admin listing.
type AdminBookingRow struct {
	UserBookingRow
	CustomerName  string `gorm:"column:customer_name" json:"customer_name"`
	CustomerPhone string `gorm:"column:customer_phone" json:"customer_phone"`
}

func (r *BookingRepository) ListWithDetails(ctx context.Context) ([]AdminBookingRow, error) {
	var rows []AdminBookingRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
			venues.name AS venue_name,
			venues.type AS venue_type,
			'' AS venue_image,
			users.name AS customer_name,
			users.phone AS customer_phone`).
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

func (r *BookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Updates(map[string]any{"payment_status": status, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}
