package auth

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"user_type,omitempty"`
}

type RegisterOwnerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	BusinessName    string `json:"business_name" binding:"required"`
	BusinessLicense string `json:"business_license"`
}

type VerifyOtpRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Otp    string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserPublic is the projection returned after login; never carries the
// password hash.
type UserPublic struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
	Verified bool   `json:"verified"`
}

// RegisterResult carries the new user id plus the OTP value. Returning
// the code to the caller stands in for an out-of-band SMS channel.
type RegisterResult struct {
	UserID int64  `json:"user_id"`
	Otp    string `json:"otp"`
}
