package admin

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/database"
	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	svc := NewService(
		repository.NewVenueRepository(db),
		repository.NewBookingRepository(db),
		repository.NewUserRepository(db),
	)
	return svc, db
}

func seedPendingVenue(t *testing.T, db *gorm.DB) *domain.Venue {
	t.Helper()

	u := &domain.User{Name: "Owner", Email: "o@b.kz", Phone: "o", Role: domain.RoleVenueOwner, Verified: true}
	require.NoError(t, db.Create(u).Error)
	o := &domain.VenueOwner{UserID: u.ID, BusinessName: "Biz"}
	require.NoError(t, db.Create(o).Error)

	v := &domain.Venue{OwnerID: o.ID, Name: "Hall", Type: domain.VenueHall, Location: "Bishkek", PricePerNight: 100, Status: domain.VenuePending}
	require.NoError(t, db.Create(v).Error)
	return v
}

func TestSetVenueStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	v := seedPendingVenue(t, db)

	assert.ErrorIs(t, svc.SetVenueStatus(ctx, v.ID, "pending"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetVenueStatus(ctx, v.ID, "bogus"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetVenueStatus(ctx, 9999, "approved"), ErrNotFound)

	require.NoError(t, svc.SetVenueStatus(ctx, v.ID, "approved"))

	var got domain.Venue
	require.NoError(t, db.First(&got, v.ID).Error)
	assert.Equal(t, domain.VenueApproved, got.Status)
}

func TestPendingVenues_JoinsOwner(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	seedPendingVenue(t, db)

	rows, err := svc.PendingVenues(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hall", rows[0].Name)
	assert.Equal(t, "Biz", rows[0].BusinessName)
	assert.Equal(t, "Owner", rows[0].OwnerName)
}

func TestSetBookingStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	v := seedPendingVenue(t, db)

	c := &domain.User{Name: "C", Email: "c@b.kz", Phone: "c", Role: domain.RoleCustomer, Verified: true}
	require.NoError(t, db.Create(c).Error)

	b := &domain.Booking{VenueID: v.ID, UserID: c.ID, TotalPrice: 200, Status: domain.BookingPending}
	require.NoError(t, db.Create(b).Error)

	assert.ErrorIs(t, svc.SetBookingStatus(ctx, b.ID, "paid"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetBookingStatus(ctx, 9999, "confirmed"), ErrNotFound)

	require.NoError(t, svc.SetBookingStatus(ctx, b.ID, "confirmed"))

	var got domain.Booking
	require.NoError(t, db.First(&got, b.ID).Error)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
}

func TestSetBookingPayment(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	v := seedPendingVenue(t, db)

	c := &domain.User{Name: "C", Email: "c@b.kz", Phone: "c", Role: domain.RoleCustomer, Verified: true}
	require.NoError(t, db.Create(c).Error)

	b := &domain.Booking{VenueID: v.ID, UserID: c.ID, TotalPrice: 200, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending}
	require.NoError(t, db.Create(b).Error)

	assert.ErrorIs(t, svc.SetBookingPayment(ctx, b.ID, "confirmed"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.SetBookingPayment(ctx, 9999, "paid"), ErrNotFound)

	require.NoError(t, svc.SetBookingPayment(ctx, b.ID, "paid"))

	var got domain.Booking
	require.NoError(t, db.First(&got, b.ID).Error)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
}

func TestStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	v := seedPendingVenue(t, db)

	c := &domain.User{Name: "C", Email: "c@b.kz", Phone: "c", Role: domain.RoleCustomer, Verified: true}
	require.NoError(t, db.Create(c).Error)

	require.NoError(t, db.Create(&domain.Booking{VenueID: v.ID, UserID: c.ID, TotalPrice: 200, Status: domain.BookingConfirmed, CreatedAt: time.Now()}).Error)
	require.NoError(t, db.Create(&domain.Booking{VenueID: v.ID, UserID: c.ID, TotalPrice: 500, Status: domain.BookingCancelled, CreatedAt: time.Now()}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers) // owner + customer
	assert.Equal(t, int64(1), stats.TotalVenues)
	assert.Equal(t, int64(1), stats.PendingVenues)
	assert.Equal(t, int64(2), stats.TotalBookings)
	assert.Equal(t, int64(2), stats.TodayBookings)
	assert.Equal(t, 200.0, stats.TotalRevenue) // cancelled excluded
}
