package review

type CreateReviewRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	VenueID   int64  `json:"venue_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
