package favorite

type AddFavoriteRequest struct {
	VenueID int64 `json:"venue_id" binding:"required"`
}
