package repository

import (
	"context"
	"errors"

	"venuebook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the pair unless it already exists. Returns created=false
// when the pair was already present; both outcomes are success for the
// caller.
func (r *FavoriteRepository) Add(ctx context.Context, userID, venueID int64) (created bool, err error) {
	f := domain.Favorite{UserID: userID, VenueID: venueID}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&f)
	if tx.Error != nil {
		if IsUniqueViolation(tx.Error) {
			return false, nil
		}
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, venueID int64) error {
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND venue_id = ?", userID, venueID).
		Delete(&domain.Favorite{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// GetByUserID returns favorited venues restricted to approved status,
// newest favorited first.
func (r *FavoriteRepository) GetByUserID(ctx context.Context, userID int64) ([]VenueSummary, error) {
	var rows []VenueSummary
	err := r.db.WithContext(ctx).
		Table("favorites").
		Select(`venues.*,
			COUNT(reviews.id) AS review_count,
			COALESCE(AVG(reviews.rating), 0) AS average_rating,
			COALESCE((SELECT url FROM venue_images
				WHERE venue_images.venue_id = venues.id AND venue_images.is_primary
				LIMIT 1), '') AS primary_image`).
		Joins("JOIN venues ON venues.id = favorites.venue_id").
		Joins("LEFT JOIN reviews ON reviews.venue_id = venues.id").
		Where("favorites.user_id = ? AND venues.status = ?", userID, domain.VenueApproved).
		Group("venues.id, favorites.created_at").
		Order("favorites.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
