package repository

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.VenueOwner{},
		&domain.Venue{},
		&domain.VenueImage{},
		&domain.Booking{},
		&domain.Review{},
		&domain.Favorite{},
	))
	return db
}

func seedVenue(t *testing.T, db *gorm.DB) *domain.Venue {
	t.Helper()

	u := &domain.User{Name: "Owner", Email: "o@b.kz", Phone: "o", Role: domain.RoleVenueOwner, Verified: true}
	require.NoError(t, db.Create(u).Error)
	o := &domain.VenueOwner{UserID: u.ID, BusinessName: "Biz"}
	require.NoError(t, db.Create(o).Error)
	v := &domain.Venue{OwnerID: o.ID, Name: "Hall", Type: domain.VenueHall, Location: "Bishkek", PricePerNight: 100, Status: domain.VenueApproved}
	require.NoError(t, db.Create(v).Error)
	return v
}

func day(d int) time.Time {
	return time.Date(2026, 12, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateIfAvailable_RejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	v := seedVenue(t, db)
	ctx := context.Background()

	first := &domain.Booking{
		VenueID: v.ID, UserID: 1,
		CheckInDate: day(1), CheckOutDate: day(5),
		TotalPrice: 400,
		Status:     domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	overlapping := []struct {
		name    string
		in, out time.Time
	}{
		{"inside", day(2), day(3)},
		{"straddles start", day(1).AddDate(0, 0, -1), day(2)},
		{"straddles end", day(4), day(7)},
		{"covers", day(1), day(6)},
	}
	for _, tc := range overlapping {
		t.Run(tc.name, func(t *testing.T) {
			b := &domain.Booking{
				VenueID: v.ID, UserID: 2,
				CheckInDate: tc.in, CheckOutDate: tc.out,
				TotalPrice: 100,
				Status:     domain.BookingPending, PaymentStatus: domain.PaymentPending,
			}
			assert.ErrorIs(t, repo.CreateIfAvailable(ctx, b), ErrDateConflict)
		})
	}
}

func TestCreateIfAvailable_AllowsAdjacentAndCancelled(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	v := seedVenue(t, db)
	ctx := context.Background()

	first := &domain.Booking{
		VenueID: v.ID, UserID: 1,
		CheckInDate: day(1), CheckOutDate: day(5),
		TotalPrice: 400,
		Status:     domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	// checkout day equals the next check-in day: no overlap
	adjacent := &domain.Booking{
		VenueID: v.ID, UserID: 2,
		CheckInDate: day(5), CheckOutDate: day(7),
		TotalPrice: 200,
		Status:     domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	require.NoError(t, repo.CreateIfAvailable(ctx, adjacent))

	// a cancelled booking frees its dates
	_, err := repo.UpdateStatus(ctx, first.ID, domain.BookingCancelled)
	require.NoError(t, err)

	rebook := &domain.Booking{
		VenueID: v.ID, UserID: 3,
		CheckInDate: day(1), CheckOutDate: day(5),
		TotalPrice: 400,
		Status:     domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	assert.NoError(t, repo.CreateIfAvailable(ctx, rebook))
}

func TestCreateIfAvailable_OtherVenueUnaffected(t *testing.T) {
	db := newTestDB(t)
	repo := NewBookingRepository(db)
	v1 := seedVenue(t, db)
	v2 := &domain.Venue{OwnerID: v1.OwnerID, Name: "Chalet", Type: domain.VenueChalet, Location: "Karakol", PricePerNight: 200, Status: domain.VenueApproved}
	require.NoError(t, db.Create(v2).Error)
	ctx := context.Background()

	first := &domain.Booking{VenueID: v1.ID, UserID: 1, CheckInDate: day(1), CheckOutDate: day(5), TotalPrice: 400, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}
	require.NoError(t, repo.CreateIfAvailable(ctx, first))

	other := &domain.Booking{VenueID: v2.ID, UserID: 2, CheckInDate: day(1), CheckOutDate: day(5), TotalPrice: 800, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending}
	assert.NoError(t, repo.CreateIfAvailable(ctx, other))
}
