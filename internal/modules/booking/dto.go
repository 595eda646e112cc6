package booking

import "time"

type CreateBookingRequest struct {
	VenueID      int64   `json:"venue_id" binding:"required"`
	CheckInDate  string  `json:"check_in_date" binding:"required"`
	CheckOutDate string  `json:"check_out_date" binding:"required"`
	TotalPrice   float64 `json:"total_price" binding:"required,gt=0"`
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
