package auth

import (
	"errors"
	"fmt"
	"time"

	"food-delivery-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the only password constraint the system enforces.
const MinPasswordLength = 6

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ChangePasswordTx applies the credential-change cascade inside an existing
// transaction: store the new digest, revoke every bearer token, clear any
// pending reset token. A reader must never observe the new digest with old
// tokens still valid, so the three writes commit together.
func ChangePasswordTx(tx *gorm.DB, user *models.User, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return &ValidationError{Message: "Password is too short (minimum is 6 characters)"}
	}

	digest, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"password_digest":                digest,
		"reset_password_token":           nil,
		"reset_password_token_expire_at": nil,
	}
	if err := tx.Model(user).Updates(updates).Error; err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.AuthToken{}).Error; err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}

	user.PasswordDigest = digest
	user.ResetPasswordToken = nil
	user.ResetPasswordTokenExpireAt = nil
	return nil
}

// ChangePassword runs the cascade in its own transaction.
func (s *Store) ChangePassword(user *models.User, newPassword string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return ChangePasswordTx(tx, user, newPassword)
	})
}

// RequestReset issues a time-bounded reset token for the account and emits
// the reset-issued event. The notification runs after the token is
// persisted; a failed delivery never rolls the token back.
func (s *Store) RequestReset(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	tokenStr, err := models.NewTokenString()
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	expireAt := time.Now().Add(models.ResetTokenTTL)

	updates := map[string]interface{}{
		"reset_password_token":           tokenStr,
		"reset_password_token_expire_at": expireAt,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("save reset token: %w", err)
	}
	user.ResetPasswordToken = &tokenStr
	user.ResetPasswordTokenExpireAt = &expireAt

	if s.notifier != nil {
		s.notifier.ResetIssued(&user)
	}
	return &user, nil
}

// ConsumeReset exchanges a pending reset token for a new password. Lookup
// and expiry are two distinct steps: an expired-but-present token reports
// ErrResetExpired (401 at the boundary), never not-found. The password
// cascade clears the token, so a reset token works exactly once.
func (s *Store) ConsumeReset(tokenString, newPassword string) (*models.User, error) {
	var user models.User
	err := s.db.Where("reset_password_token = ?", tokenString).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find reset token: %w", err)
	}

	if user.ResetPasswordTokenExpired() {
		return nil, ErrResetExpired
	}

	if err := s.ChangePassword(&user, newPassword); err != nil {
		return nil, err
	}
	s.log.Debug().Uint("user_id", user.ID).Msg("password reset consumed")
	return &user, nil
}
