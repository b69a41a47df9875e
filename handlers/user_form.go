package handlers

import (
	"errors"
	"fmt"

	"food-delivery-api/auth"
	"food-delivery-api/models"

	"gorm.io/gorm"
)

// UserParams is the explicit input for creating or updating a user. Nil
// means the field was not provided, so updates only touch what the caller
// sent.
type UserParams struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	Role        *string `json:"role"`
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	State       *string `json:"state"`
}

func applyUserParams(u *models.User, p UserParams) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		u.Role = models.UserRole(*p.Role)
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.State != nil {
		u.State = *p.State
	}
}

// validateUser checks the merged record and reports only the first failing
// message. The database is consulted solely for the uniqueness lookups.
func validateUser(db *gorm.DB, u *models.User, id uint) error {
	if u.Role.RequiresDetailedInfo() {
		required := []struct{ label, value string }{
			{"Name", u.Name},
			{"Phone number", u.PhoneNumber},
			{"City", u.City},
			{"State", u.State},
			{"Address", u.Address},
		}
		for _, f := range required {
			if f.value == "" {
				return &auth.ValidationError{Message: f.label + " can't be blank"}
			}
		}
	}
	if u.Email == "" {
		return &auth.ValidationError{Message: "Email can't be blank"}
	}
	if u.Role == "" {
		return &auth.ValidationError{Message: "Role can't be blank"}
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ? AND id <> ?", u.Email, id).Count(&count).Error; err != nil {
		return fmt.Errorf("check email uniqueness: %w", err)
	}
	if count > 0 {
		return &auth.ValidationError{Message: "Email has already been taken"}
	}

	if u.Role.RequiresDetailedInfo() {
		if err := db.Model(&models.User{}).Where("phone_number = ? AND id <> ?", u.PhoneNumber, id).Count(&count).Error; err != nil {
			return fmt.Errorf("check phone uniqueness: %w", err)
		}
		if count > 0 {
			return &auth.ValidationError{Message: "Phone number has already been taken"}
		}
	}

	if !u.Role.Valid() {
		return &auth.ValidationError{Message: "Role is not included in the list"}
	}
	return nil
}

// SaveUser loads the target record (or starts a fresh one), merges the
// provided fields, validates the result, and writes it back. A password on
// the update path goes through the full credential-change cascade in the
// same transaction as the other field writes.
func SaveUser(db *gorm.DB, params UserParams, id uint) (*models.User, error) {
	var user models.User
	if id != 0 {
		if err := db.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, auth.ErrUserNotFound
			}
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	applyUserParams(&user, params)
	if err := validateUser(db, &user, id); err != nil {
		return nil, err
	}

	if id == 0 {
		password := ""
		if params.Password != nil {
			password = *params.Password
		}
		if len(password) < auth.MinPasswordLength {
			return nil, &auth.ValidationError{Message: "Password is too short (minimum is 6 characters)"}
		}
		digest, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		user.PasswordDigest = digest
		if err := db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return &user, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"email":        user.Email,
			"role":         user.Role,
			"name":         user.Name,
			"phone_number": user.PhoneNumber,
			"address":      user.Address,
			"city":         user.City,
			"state":        user.State,
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if params.Password != nil {
			return auth.ChangePasswordTx(tx, &user, *params.Password)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
