package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Booking struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	VenueID       int64         `json:"venue_id" gorm:"index" validate:"required"`
	UserID        int64         `json:"user_id" gorm:"index" validate:"required"`
	CheckInDate   time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time     `json:"check_out_date" validate:"required"`
	TotalPrice    float64       `json:"total_price" validate:"gte=0"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	User  *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (Booking) TableName() string { return "bookings" }

// Nights returns the chargeable night count, rounding partial days up.
func (b *Booking) Nights() int {
	d := b.CheckOutDate.Sub(b.CheckInDate)
	nights := int(d.Hours() / 24)
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}
