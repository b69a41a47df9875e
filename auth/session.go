package auth

import (
	"errors"
	"fmt"

	"food-delivery-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login verifies the credentials and issues a bearer token. Concurrent
// logins for the same user each get their own token row.
func (s *Store) Login(email, password string) (*models.User, *models.AuthToken, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUserNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.Issue(user.ID)
	if err != nil {
		return nil, nil, err
	}
	s.log.Debug().Uint("user_id", user.ID).Msg("session opened")
	return &user, token, nil
}

// Logout deletes the current session's token.
func (s *Store) Logout(tokenString string) error {
	return s.Revoke(tokenString)
}
