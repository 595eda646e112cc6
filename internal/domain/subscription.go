package domain

import "time"

type SubscriptionType string

const (
	SubscriptionBasic   SubscriptionType = "basic"
	SubscriptionPremium SubscriptionType = "premium"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a paid plan an admin assigns to a venue owner. There
// is no automatic expiry transition in the API process; status moves
// through the admin endpoint or cmd/maintenance.
type Subscription struct {
	ID           string             `json:"id" gorm:"primaryKey"`
	VenueOwnerID int64              `json:"venue_owner_id" gorm:"index"`
	Type         SubscriptionType   `json:"type"`
	Price        float64            `json:"price"`
	StartDate    time.Time          `json:"start_date"`
	EndDate      time.Time          `json:"end_date"`
	Status       SubscriptionStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`

	Owner *VenueOwner `json:"owner,omitempty" gorm:"foreignKey:VenueOwnerID"`
}

func (Subscription) TableName() string { return "subscriptions" }

// IsExpired reports whether the plan period has ended, regardless of
// the persisted status field.
func (s *Subscription) IsExpired() bool {
	return time.Now().After(s.EndDate)
}
