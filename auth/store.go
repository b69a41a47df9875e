package auth

import (
	"errors"
	"fmt"

	"food-delivery-api/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Notifier receives the reset-issued event emitted by RequestReset.
// Delivery failures are the notifier's concern, never the store's.
type Notifier interface {
	ResetIssued(user *models.User)
}

// Store owns the bearer-token and reset-token lifecycle against the shared
// database. Handlers never touch token rows directly.
type Store struct {
	db       *gorm.DB
	log      zerolog.Logger
	notifier Notifier
}

func NewStore(db *gorm.DB, log zerolog.Logger, notifier Notifier) *Store {
	return &Store{db: db, log: log, notifier: notifier}
}

// Issue creates a fresh bearer token for the user. Token strings carry
// enough entropy that a unique-index violation is an internal error, not a
// retry case.
func (s *Store) Issue(userID uint) (*models.AuthToken, error) {
	str, err := models.NewTokenString()
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	token := &models.AuthToken{UserID: userID, Token: str}
	if err := s.db.Create(token).Error; err != nil {
		return nil, fmt.Errorf("create auth token: %w", err)
	}
	return token, nil
}

// Validate resolves a presented token string to its owning user. Expired
// tokens are deleted as a side effect of the read; there is no background
// sweep. Not-found and expired both surface as 401 at the boundary so a
// caller cannot probe which case occurred.
func (s *Store) Validate(tokenString string) (*models.User, *models.AuthToken, error) {
	var token models.AuthToken
	var user models.User
	var expired bool

	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("token = ?", tokenString).First(&token).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenNotFound
		}
		if err != nil {
			return fmt.Errorf("find auth token: %w", err)
		}

		if token.Expired() {
			// Returning an error here would roll the delete back, so the
			// expired case commits and is flagged instead.
			expired = true
			if err := tx.Delete(&models.AuthToken{}, token.ID).Error; err != nil {
				return fmt.Errorf("delete expired token: %w", err)
			}
			return nil
		}

		if err := tx.First(&user, token.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTokenNotFound
			}
			return fmt.Errorf("find token user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if expired {
		return nil, nil, ErrTokenExpired
	}
	return &user, &token, nil
}

// Revoke deletes a single token. No-op if it does not exist.
func (s *Store) Revoke(tokenString string) error {
	if err := s.db.Where("token = ?", tokenString).Delete(&models.AuthToken{}).Error; err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// RevokeAll deletes every token belonging to the user. No-op if none exist.
func (s *Store) RevokeAll(userID uint) error {
	if err := s.db.Where("user_id = ?", userID).Delete(&models.AuthToken{}).Error; err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}
