package subscription

import (
	"context"
	"testing"

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

	return NewService(
		repository.NewSubscriptionRepository(db),
		repository.NewVenueOwnerRepository(db),
	), db
}

func seedOwner(t *testing.T, db *gorm.DB) *domain.VenueOwner {
	t.Helper()

	u := &domain.User{Name: "Owner", Email: "o@b.kz", Phone: "o", Role: domain.RoleVenueOwner, Verified: true}
	require.NoError(t, db.Create(u).Error)
	o := &domain.VenueOwner{UserID: u.ID, BusinessName: "Biz"}
	require.NoError(t, db.Create(o).Error)
	return o
}

func TestCreate_ValidatesDatesAndOwner(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, db)

	base := CreateSubscriptionRequest{
		VenueOwnerID: owner.ID,
		Type:         "basic",
		Price:        49,
		StartDate:    "2026-09-01",
		EndDate:      "2027-09-01",
	}

	bad := base
	bad.EndDate = "2026-08-01" // before start
	_, err := svc.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.StartDate = "01.09.2026"
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrValidation)

	bad = base
	bad.VenueOwnerID = 9999
	_, err = svc.Create(ctx, bad)
	assert.ErrorIs(t, err, ErrOwnerNotFound)

	sub, err := svc.Create(ctx, base)
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, domain.SubscriptionActive, sub.Status)
}

func TestSetStatus(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	owner := seedOwner(t, db)

	sub, err := svc.Create(ctx, CreateSubscriptionRequest{
		VenueOwnerID: owner.ID,
		Type:         "premium",
		Price:        99,
		StartDate:    "2026-09-01",
		EndDate:      "2027-09-01",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.SetStatus(ctx, sub.ID, "bogus"), ErrValidation)
	assert.ErrorIs(t, svc.SetStatus(ctx, "missing-id", "cancelled"), ErrNotFound)

	require.NoError(t, svc.SetStatus(ctx, sub.ID, "cancelled"))

	var got domain.Subscription
	require.NoError(t, db.Where("id = ?", sub.ID).First(&got).Error)
	assert.Equal(t, domain.SubscriptionCancelled, got.Status)
}
