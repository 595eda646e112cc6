package domain

import "time"

// OtpCode is one verification code issued for one registration attempt.
// Rows are marked used after the first successful match; stale rows are
// swept by cmd/maintenance, never by the API process.
type OtpCode struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"index"`
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	Used      bool      `json:"used"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (OtpCode) TableName() string { return "otp_codes" }
