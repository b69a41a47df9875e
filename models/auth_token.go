package models

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// TokenTTL is the fixed validity window of a bearer token, measured from
// its creation time. Expiry is derived, never stored.
const TokenTTL = 24 * time.Hour

// ResetTokenTTL bounds the password-reset window the same way.
const ResetTokenTTL = 24 * time.Hour

type AuthToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Expired reports whether the token is past its validity window.
func (t *AuthToken) Expired() bool {
	return time.Since(t.CreatedAt) > TokenTTL
}

// NewTokenString returns a URL-safe opaque token with 16 bytes of entropy.
func NewTokenString() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
