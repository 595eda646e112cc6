package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"venuebook/internal/domain"
	"venuebook/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var otpRegex = regexp.MustCompile(`^\d{6}$`)

// Service contains all business logic for registration, verification
// and login.
type Service struct {
	users  UserRepositoryInterface
	jwt    jwtService
	otpTTL time.Duration
}

type LoginResult struct {
	User  UserPublic
	Token string
}

func NewService(users UserRepositoryInterface, jwt jwtService, otpTTL time.Duration) *Service {
	return &Service{
		users:  users,
		jwt:    jwt,
		otpTTL: otpTTL,
	}
}

// Register creates an unverified user together with its OTP row in one
// transaction: a unique-constraint hit on email or phone rolls both
// inserts back.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		req.Password == "" {
		return nil, ErrValidation
	}

	role := domain.RoleCustomer
	switch req.UserType {
	case "", string(domain.RoleCustomer):
	case string(domain.RoleVenueOwner):
		role = domain.RoleVenueOwner
	default:
		return nil, ErrValidation
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     role,
		Verified: false,
	}

	otp, err := s.registerTx(ctx, user, nil, req.Password)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: user.ID, Otp: otp}, nil
}

// RegisterOwner additionally creates the VenueOwner business profile
// inside the same transaction.
func (s *Service) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (*RegisterResult, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		req.Password == "" ||
		strings.TrimSpace(req.BusinessName) == "" {
		return nil, ErrValidation
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     domain.RoleVenueOwner,
		Verified: false,
	}
	owner := &domain.VenueOwner{
		BusinessName:    req.BusinessName,
		BusinessLicense: req.BusinessLicense,
	}

	otp, err := s.registerTx(ctx, user, owner, req.Password)
	if err != nil {
		return nil, err
	}
	return &RegisterResult{UserID: user.ID, Otp: otp}, nil
}

func (s *Service) registerTx(ctx context.Context, user *domain.User, owner *domain.VenueOwner, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)

	otp, err := generateOtp()
	if err != nil {
		return "", err
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if owner != nil {
			owner.UserID = user.ID
			if err := tx.Create(owner).Error; err != nil {
				return err
			}
		}

		code := &domain.OtpCode{
			UserID:    user.ID,
			Phone:     user.Phone,
			Code:      otp,
			Used:      false,
			ExpiresAt: time.Now().Add(s.otpTTL),
		}
		return tx.Create(code).Error
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return "", ErrAlreadyRegistered
		}
		return "", err
	}

	return otp, nil
}

// VerifyOtp matches an unused, unexpired code for the user and flips
// user.verified and otp.used atomically. Wrong, used and expired codes
// all fail identically.
func (s *Service) VerifyOtp(ctx context.Context, userID int64, code string) error {
	if userID <= 0 || !otpRegex.MatchString(code) {
		return ErrInvalidOtp
	}

	return s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row domain.OtpCode
		err := tx.
			Where("user_id = ? AND code = ? AND used = ? AND expires_at > ?",
				userID, code, false, time.Now()).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidOtp
			}
			return err
		}

		// The used guard makes the burn single-winner even if another
		// transaction matched the same row first.
		burn := tx.Model(&domain.OtpCode{}).
			Where("id = ? AND used = ?", row.ID, false).
			Update("used", true)
		if burn.Error != nil {
			return burn.Error
		}
		if burn.RowsAffected == 0 {
			return ErrInvalidOtp
		}

		return tx.Model(&domain.User{}).
			Where("id = ?", userID).
			Update("verified", true).Error
	})
}

// Login checks credentials against the bcrypt hash and gates on the
// verification state. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Verified {
		return nil, ErrNotVerified
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:  toPublic(user),
		Token: token,
	}, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*UserPublic, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pub := toPublic(user)
	return &pub, nil
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Phone:    u.Phone,
		UserType: string(u.Role),
		Verified: u.Verified,
	}
}

func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
