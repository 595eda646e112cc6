package repository

import (
	"context"
	"time"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

type VenueFilters struct {
	Type     string
	Location string
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
}

// VenueSummary is a search row: venue columns plus review aggregates
// and the primary image URL.
type VenueSummary struct {
	ID            int64     `gorm:"column:id" json:"id"`
	OwnerID       int64     `gorm:"column:owner_id" json:"owner_id"`
	Name          string    `gorm:"column:name" json:"name"`
	Description   string    `gorm:"column:description" json:"description,omitempty"`
	Type          string    `gorm:"column:type" json:"type"`
	Location      string    `gorm:"column:location" json:"location"`
	Latitude      float64   `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude     float64   `gorm:"column:longitude" json:"longitude,omitempty"`
	PricePerNight float64   `gorm:"column:price_per_night" json:"price_per_night"`
	Amenities     string    `gorm:"column:amenities" json:"amenities,omitempty"`
	Status        string    `gorm:"column:status" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	ReviewCount   int64     `gorm:"column:review_count" json:"review_count"`
	AverageRating float64   `gorm:"column:average_rating" json:"average_rating"`
	PrimaryImage  string    `gorm:"column:primary_image" json:"primary_image,omitempty"`
}

// PendingVenueRow joins a pending venue with its owner contact info
// for the admin moderation queue.
type PendingVenueRow struct {
	VenueSummary
	BusinessName string `gorm:"column:business_name" json:"business_name"`
	OwnerName    string `gorm:"column:owner_name" json:"owner_name"`
	OwnerEmail   string `gorm:"column:owner_email" json:"owner_email"`
	OwnerPhone   string `gorm:"column:owner_phone" json:"owner_phone"`
}

type VenueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

func (r *VenueRepository) DB() *gorm.DB { return r.db }

const venueSummarySelect = `venues.*,
	COUNT(reviews.id) AS review_count,
	COALESCE(AVG(reviews.rating), 0) AS average_rating,
	COALESCE((SELECT url FROM venue_images
		WHERE venue_images.venue_id = venues.id AND venue_images.is_primary
		LIMIT 1), '') AS primary_image`

// Search returns approved venues matching the conjunctive filters,
// newest first. Non-approved venues never appear regardless of filters.
func (r *VenueRepository) Search(ctx context.Context, f VenueFilters) ([]VenueSummary, error) {
	q := r.db.WithContext(ctx).
		Table("venues").
		Select(venueSummarySelect).
		Joins("LEFT JOIN reviews ON reviews.venue_id = venues.id").
		Where("venues.status = ?", domain.VenueApproved)

	if f.Type != "" {
		q = q.Where("venues.type = ?", f.Type)
	}
	if f.Location != "" {
		q = q.Where("venues.location LIKE ?", "%"+f.Location+"%")
	}
	if f.MinPrice > 0 {
		q = q.Where("venues.price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		q = q.Where("venues.price_per_night <= ?", f.MaxPrice)
	}

	q = q.Group("venues.id").Order("venues.created_at DESC")

	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var rows []VenueSummary
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSummaryByID returns one venue with aggregates, any status.
func (r *VenueRepository) GetSummaryByID(ctx context.Context, id int64) (*VenueSummary, error) {
	var row VenueSummary
	tx := r.db.WithContext(ctx).
		Table("venues").
		Select(venueSummarySelect).
		Joins("LEFT JOIN reviews ON reviews.venue_id = venues.id").
		Where("venues.id = ?", id).
		Group("venues.id").
		Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 || row.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	var v domain.Venue
	tx := r.db.WithContext(ctx).Preload("Images").First(&v, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

// Create inserts the venue together with its images.
func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VenueRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Venue, error) {
	var venues []domain.Venue
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&venues).Error
	return venues, err
}

// UpdateStatus is the single transition point of the listing
// lifecycle. Returns the number of rows affected so callers can
// distinguish a missing venue.
func (r *VenueRepository) UpdateStatus(ctx context.Context, id int64, status domain.VenueStatus) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Venue{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()})
	return tx.RowsAffected, tx.Error
}

// ListPendingWithOwner returns the moderation queue, newest first.
func (r *VenueRepository) ListPendingWithOwner(ctx context.Context) ([]PendingVenueRow, error) {
	var rows []PendingVenueRow
	err := r.db.WithContext(ctx).
		Table("venues").
		Select(`venues.*,
			0 AS review_count, 0 AS average_rating,
			COALESCE((SELECT url FROM venue_images
				WHERE venue_images.venue_id = venues.id AND venue_images.is_primary
				LIMIT 1), '') AS primary_image,
			vo.business_name AS business_name,
			u.name AS owner_name,
			u.email AS owner_email,
			u.phone AS owner_phone`).
		Joins("JOIN venue_owners vo ON vo.id = venues.owner_id").
		Joins("JOIN users u ON u.id = vo.user_id").
		Where("venues.status = ?", domain.VenuePending).
		Order("venues.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
