package domain

import "time"

type VenueType string

const (
	VenueHall   VenueType = "hall"
	VenueChalet VenueType = "chalet"
	VenueCar    VenueType = "car"
)

type VenueStatus string

const (
	VenuePending  VenueStatus = "pending"
	VenueApproved VenueStatus = "approved"
	VenueRejected VenueStatus = "rejected"
)

func ParseVenueType(s string) (VenueType, bool) {
	switch VenueType(s) {
	case VenueHall, VenueChalet, VenueCar:
		return VenueType(s), true
	}
	return "", false
}

type Venue struct {
	ID            int64       `json:"id" gorm:"primaryKey"`
	OwnerID       int64       `json:"owner_id" gorm:"index"`
	Name          string      `json:"name"`
	Description   string      `json:"description,omitempty" gorm:"type:text"`
	Type          VenueType   `json:"type"`
	Location      string      `json:"location"`
	Latitude      float64     `json:"latitude,omitempty"`
	Longitude     float64     `json:"longitude,omitempty"`
	PricePerNight float64     `json:"price_per_night"`
	Amenities     string      `json:"amenities,omitempty"` // comma-joined tags
	Status        VenueStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	Owner  *VenueOwner  `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Images []VenueImage `json:"images,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

func (Venue) TableName() string { return "venues" }

// VenueImage stores one gallery entry. At most one image per venue
// should be primary; the invariant is advisory, not constrained.
type VenueImage struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	VenueID   int64  `json:"venue_id" gorm:"index"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

func (VenueImage) TableName() string { return "venue_images" }
