package admin

type SetVenueStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type Stats struct {
	TotalUsers    int64   `json:"total_users"`
	TotalVenues   int64   `json:"total_venues"`
	PendingVenues int64   `json:"pending_venues"`
	TotalBookings int64   `json:"total_bookings"`
	TodayBookings int64   `json:"today_bookings"`
	TotalRevenue  float64 `json:"total_revenue"`
}
