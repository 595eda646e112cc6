package repository

import (
	"context"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type VenueOwnerRepository struct {
	db *gorm.DB
}

func NewVenueOwnerRepository(db *gorm.DB) *VenueOwnerRepository {
	return &VenueOwnerRepository{db: db}
}

func (r *VenueOwnerRepository) DB() *gorm.DB { return r.db }

func (r *VenueOwnerRepository) Create(ctx context.Context, o *domain.VenueOwner) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *VenueOwnerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.VenueOwner, error) {
	var o domain.VenueOwner
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *VenueOwnerRepository) GetByID(ctx context.Context, id int64) (*domain.VenueOwner, error) {
	var o domain.VenueOwner
	tx := r.db.WithContext(ctx).First(&o, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}
