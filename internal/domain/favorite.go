package domain

import "time"

// Favorite bookmarks one venue for one user. The unique index makes
// the pair idempotent at the store level.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_venue"`
	VenueID   int64     `json:"venue_id" gorm:"not null;index;uniqueIndex:idx_user_venue"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Venue *Venue `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
}

func (Favorite) TableName() string { return "favorites" }
