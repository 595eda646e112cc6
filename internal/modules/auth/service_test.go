package auth

import (
	"context"
	"testing"
	"time"

	"venuebook/internal/database"
	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "test-token", nil
}

func newTestService(t *testing.T) (*Service, *repository.UserRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	users := repository.NewUserRepository(db)
	return NewService(users, stubJWT{}, 10*time.Minute), users
}

func registerReq() RegisterRequest {
	return RegisterRequest{
		Name:     "Aida",
		Email:    "aida@mail.kz",
		Phone:    "0551234567",
		Password: "secret123",
	}
}

func TestRegister_CreatesUnverifiedUserWithOtp(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.NotZero(t, res.UserID)
	assert.Regexp(t, `^\d{6}$`, res.Otp)

	u, err := users.GetByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.False(t, u.Verified)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.NotEqual(t, "secret123", u.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Phone = "0559999999"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegister_DuplicatePhoneRollsBackOtp(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	dup := registerReq()
	dup.Email = "other@mail.kz"
	_, err = svc.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)

	// transaction must not leave an orphan OTP row behind
	var cnt int64
	require.NoError(t, users.DB().Model(&domain.OtpCode{}).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}

func TestRegisterOwner_CreatesBusinessProfile(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	res, err := svc.RegisterOwner(ctx, RegisterOwnerRequest{
		Name:         "Aidar",
		Email:        "aidar@grandhall.kz",
		Phone:        "0558765410",
		Password:     "secret123",
		BusinessName: "Grand Hall Events",
	})
	require.NoError(t, err)

	u, err := users.GetByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleVenueOwner, u.Role)

	var owner domain.VenueOwner
	require.NoError(t, users.DB().Where("user_id = ?", res.UserID).First(&owner).Error)
	assert.Equal(t, "Grand Hall Events", owner.BusinessName)
}

func TestVerifyOtp_FlipsVerifiedAndBurnsCode(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	require.NoError(t, svc.VerifyOtp(ctx, res.UserID, res.Otp))

	u, err := users.GetByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.True(t, u.Verified)

	// replay of the same code fails
	assert.ErrorIs(t, svc.VerifyOtp(ctx, res.UserID, res.Otp), ErrInvalidOtp)
}

func TestVerifyOtp_LostBurnRaceLeavesUserUnverified(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	// a competing verify won the burn: the row is already used
	require.NoError(t, users.DB().Model(&domain.OtpCode{}).
		Where("user_id = ?", res.UserID).
		Update("used", true).Error)

	assert.ErrorIs(t, svc.VerifyOtp(ctx, res.UserID, res.Otp), ErrInvalidOtp)

	u, err := users.GetByID(ctx, res.UserID)
	require.NoError(t, err)
	assert.False(t, u.Verified)
}

func TestVerifyOtp_WrongAndExpiredCodes(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyOtp(ctx, res.UserID, "000000"), ErrInvalidOtp)
	assert.ErrorIs(t, svc.VerifyOtp(ctx, res.UserID, "abc123"), ErrInvalidOtp)

	// expire the stored code
	require.NoError(t, users.DB().Model(&domain.OtpCode{}).
		Where("user_id = ?", res.UserID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)
	assert.ErrorIs(t, svc.VerifyOtp(ctx, res.UserID, res.Otp), ErrInvalidOtp)
}

func TestLogin_RequiresVerification(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "aida@mail.kz", Password: "secret123"})
	assert.ErrorIs(t, err, ErrNotVerified)

	require.NoError(t, svc.VerifyOtp(ctx, res.UserID, res.Otp))

	out, err := svc.Login(ctx, LoginRequest{Email: "AIDA@mail.kz", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "test-token", out.Token)
	assert.Equal(t, "aida@mail.kz", out.User.Email)
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.NoError(t, svc.VerifyOtp(ctx, res.UserID, res.Otp))

	_, err = svc.Login(ctx, LoginRequest{Email: "aida@mail.kz", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@mail.kz", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
