package favorite

import (
	"context"
	"errors"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"gorm.io/gorm"
)

// VenueReader checks that a favorited venue actually exists.
type VenueReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

type Service struct {
	favorites *repository.FavoriteRepository
	venues    VenueReader
}

func NewService(favorites *repository.FavoriteRepository, venues VenueReader) *Service {
	return &Service{favorites: favorites, venues: venues}
}

// Add favorites a venue for the user. Adding an already-favorited
// venue is not an error; created reports whether a new row was made.
func (s *Service) Add(ctx context.Context, userID, venueID int64) (created bool, err error) {
	v, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrVenueNotFound
		}
		return false, err
	}
	if v.Status != domain.VenueApproved {
		return false, ErrVenueNotFound
	}

	return s.favorites.Add(ctx, userID, venueID)
}

func (s *Service) Remove(ctx context.Context, userID, venueID int64) error {
	err := s.favorites.Remove(ctx, userID, venueID)
	if errors.Is(err, repository.ErrFavoriteNotFound) {
		return ErrNotFavorited
	}
	return err
}

// List returns the user's favorited venues. Admins may read any
// user's list; everyone else only their own.
func (s *Service) List(ctx context.Context, callerID int64, callerRole string, userID int64) ([]repository.VenueSummary, error) {
	if callerID != userID && callerRole != string(domain.RoleAdmin) {
		return nil, ErrForbidden
	}
	return s.favorites.GetByUserID(ctx, userID)
}
