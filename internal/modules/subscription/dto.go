package subscription

type CreateSubscriptionRequest struct {
	VenueOwnerID int64   `json:"venue_owner_id" binding:"required"`
	Type         string  `json:"type" binding:"required,oneof=basic premium"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
