package catalog

import (
	"context"
	"errors"
	"strings"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	venues *repository.VenueRepository
	owners *repository.VenueOwnerRepository
}

func NewService(venues *repository.VenueRepository, owners *repository.VenueOwnerRepository) *Service {
	return &Service{venues: venues, owners: owners}
}

// CreateVenue inserts a listing with status pending unconditionally;
// only an admin can move it from there.
func (s *Service) CreateVenue(ctx context.Context, userID int64, req CreateVenueRequest) (*domain.Venue, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Location) == "" ||
		req.PricePerNight <= 0 {
		return nil, ErrValidation
	}

	vt, ok := domain.ParseVenueType(req.Type)
	if !ok {
		return nil, ErrInvalidType
	}

	owner, err := s.owners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAnOwner
		}
		return nil, err
	}

	venue := &domain.Venue{
		OwnerID:       owner.ID,
		Name:          req.Name,
		Description:   req.Description,
		Type:          vt,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		PricePerNight: req.PricePerNight,
		Amenities:     strings.Join(req.Amenities, ","),
		Status:        domain.VenuePending,
	}

	for i, url := range req.Images {
		venue.Images = append(venue.Images, domain.VenueImage{
			URL:       url,
			IsPrimary: i == 0,
		})
	}

	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *Service) Search(ctx context.Context, req SearchRequest) ([]repository.VenueSummary, error) {
	if req.Type != "" {
		if _, ok := domain.ParseVenueType(req.Type); !ok {
			return nil, ErrInvalidType
		}
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	return s.venues.Search(ctx, repository.VenueFilters{
		Type:     req.Type,
		Location: strings.TrimSpace(req.Location),
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Limit:    limit,
		Offset:   req.Offset,
	})
}

// GetVenue returns one approved venue with its aggregates and images.
// Non-approved listings are invisible here; owners see their own via
// OwnerVenues.
func (s *Service) GetVenue(ctx context.Context, id int64) (*repository.VenueSummary, []domain.VenueImage, error) {
	summary, err := s.venues.GetSummaryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if summary.Status != string(domain.VenueApproved) {
		return nil, nil, ErrNotFound
	}

	venue, err := s.venues.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return summary, venue.Images, nil
}

func (s *Service) OwnerVenues(ctx context.Context, userID int64) ([]domain.Venue, error) {
	owner, err := s.owners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAnOwner
		}
		return nil, err
	}
	return s.venues.GetByOwnerID(ctx, owner.ID)
}

// OwnerStats aggregates listing and booking counts for the owner
// dashboard.
func (s *Service) OwnerStats(ctx context.Context, userID int64) (*OwnerStats, error) {
	owner, err := s.owners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotAnOwner
		}
		return nil, err
	}

	db := s.venues.DB().WithContext(ctx)
	stats := &OwnerStats{}

	if err := db.Table("venues").Where("owner_id = ?", owner.ID).Count(&stats.TotalVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Table("venues").
		Where("owner_id = ? AND status = ?", owner.ID, domain.VenueApproved).
		Count(&stats.ApprovedVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Table("venues").
		Where("owner_id = ? AND status = ?", owner.ID, domain.VenuePending).
		Count(&stats.PendingVenues).Error; err != nil {
		return nil, err
	}
	if err := db.Table("bookings").
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Where("venues.owner_id = ?", owner.ID).
		Count(&stats.TotalBookings).Error; err != nil {
		return nil, err
	}

	var revenue *float64
	if err := db.Table("bookings").
		Joins("JOIN venues ON venues.id = bookings.venue_id").
		Where("venues.owner_id = ? AND bookings.status <> ?", owner.ID, domain.BookingCancelled).
		Select("SUM(bookings.total_price)").
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	if revenue != nil {
		stats.Revenue = *revenue
	}

	return stats, nil
}
