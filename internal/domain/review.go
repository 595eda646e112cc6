package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"index"`
	UserID    int64     `json:"user_id" gorm:"index"`
	VenueID   int64     `json:"venue_id" gorm:"index"`
	Rating    int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Review) TableName() string { return "reviews" }
