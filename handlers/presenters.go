package handlers

import (
	"food-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// presentUser shapes a user for the wire. Password digest and reset fields
// never leave the server unless explicitly requested.
func presentUser(u *models.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"email":        u.Email,
		"role":         u.Role,
		"name":         u.Name,
		"phone_number": u.PhoneNumber,
		"address":      u.Address,
		"city":         u.City,
		"state":        u.State,
	}
}

// presentUserWithResetToken adds the pending reset token and its expiry,
// used only by the forgot-password response.
func presentUserWithResetToken(u *models.User) gin.H {
	out := presentUser(u)
	out["reset_password_token"] = u.ResetPasswordToken
	out["reset_password_token_expire_at"] = u.ResetPasswordTokenExpireAt
	return out
}

func presentRestaurant(r *models.Restaurant) gin.H {
	return gin.H{
		"id":                    r.ID,
		"name":                  r.Name,
		"address":               r.Address,
		"area":                  r.Area,
		"city":                  r.City,
		"state":                 r.State,
		"rating":                r.Rating,
		"average_delivery_time": r.AverageDeliveryTime,
		"average_cost_per_two":  r.AverageCostPerTwo,
		"manager_id":            r.ManagerID,
	}
}
