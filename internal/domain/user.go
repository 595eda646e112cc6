package domain

import "time"

type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleVenueOwner UserRole = "venue_owner"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	Phone        string    `json:"phone" gorm:"uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// VenueOwner holds the business profile attached one-to-one to a user
// with role venue_owner.
type VenueOwner struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex"`
	BusinessName    string    `json:"business_name"`
	BusinessLicense string    `json:"business_license,omitempty"`
	Verified        bool      `json:"verified"`
	CreatedAt       time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (VenueOwner) TableName() string { return "venue_owners" }
