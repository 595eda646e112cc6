package auth

import (
	"context"

	"venuebook/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface is the slice of the user repository the auth
// service needs. DB is exposed for the multi-insert transactions.
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	DB() *gorm.DB
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}
