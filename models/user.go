package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleAdmin           UserRole = "admin"
	RoleManager         UserRole = "manager"
	RoleCustomer        UserRole = "customer"
	RoleDeliveryAgent   UserRole = "delivery_agent"
	RoleCustomerSupport UserRole = "customer_support"
)

// Roles is the closed set of valid roles.
var Roles = []UserRole{RoleAdmin, RoleManager, RoleCustomer, RoleDeliveryAgent, RoleCustomerSupport}

// Valid reports whether the role is one of the known variants.
func (r UserRole) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// RequiresDetailedInfo reports whether users with this role must carry
// full contact details (name, phone, address, city, state).
func (r UserRole) RequiresDetailedInfo() bool {
	return r == RoleCustomer || r == RoleDeliveryAgent
}

type User struct {
	ID                         uint       `json:"id" gorm:"primaryKey"`
	Email                      string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordDigest             string     `json:"-" gorm:"not null"`
	Role                       UserRole   `json:"role" gorm:"not null"`
	Name                       string     `json:"name"`
	PhoneNumber                string     `json:"phone_number"`
	Address                    string     `json:"address"`
	City                       string     `json:"city"`
	State                      string     `json:"state"`
	ResetPasswordToken         *string    `json:"-" gorm:"uniqueIndex"`
	ResetPasswordTokenExpireAt *time.Time `json:"-"`
	CreatedAt                  time.Time  `json:"created_at"`
	UpdatedAt                  time.Time  `json:"updated_at"`
}

// ResetPasswordTokenExpired reports whether the pending reset token is past
// its window. Only meaningful while a reset is pending.
func (u *User) ResetPasswordTokenExpired() bool {
	return u.ResetPasswordTokenExpireAt != nil && time.Now().After(*u.ResetPasswordTokenExpireAt)
}
