package catalog

type CreateVenueRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Type          string   `json:"type" binding:"required"`
	Location      string   `json:"location" binding:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	PricePerNight float64  `json:"price_per_night" binding:"required,gt=0"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

type SearchRequest struct {
	Type     string  `form:"type"`
	Location string  `form:"location"`
	MinPrice float64 `form:"min_price"`
	MaxPrice float64 `form:"max_price"`
	Limit    int     `form:"limit"`
	Offset   int     `form:"offset"`
}

// OwnerStats aggregates an owner's listings and their bookings.
type OwnerStats struct {
	TotalVenues    int64   `json:"total_venues"`
	ApprovedVenues int64   `json:"approved_venues"`
	PendingVenues  int64   `json:"pending_venues"`
	TotalBookings  int64   `json:"total_bookings"`
	Revenue        float64 `json:"revenue"`
}
