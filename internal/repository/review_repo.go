package repository

import (
	"context"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByVenue(ctx context.Context, venueID int64, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("venue_id = ?", venueID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	tx := r.db.WithContext(ctx).First(&rv, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &rv, nil
}
