package handlers

import (
	"errors"
	"net/http"

	"food-delivery-api/auth"
	"food-delivery-api/config"
	"food-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// RoleIndex lists users holding the requested role. An unknown or missing
// role yields an empty list, not an error.
func RoleIndex(c *gin.Context) {
	var users []models.User
	config.DB.Where("role = ?", c.Query("role")).Find(&users)

	out := make([]gin.H, 0, len(users))
	for i := range users {
		out = append(out, presentUser(&users[i]))
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// ShowUser returns a single user by id.
func ShowUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": presentUser(&user)})
}

// CreateUser registers an account through the user form.
func CreateUser(c *gin.Context) {
	var params UserParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := SaveUser(config.DB, params, 0)
	if err != nil {
		renderUserFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": presentUser(user)})
}

// UpdateUser merges the provided fields into an existing account. Sending a
// password here changes it and revokes every open session for the account.
func UpdateUser(c *gin.Context) {
	var target models.User
	if err := config.DB.First(&target, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var params UserParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := SaveUser(config.DB, params, target.ID)
	if err != nil {
		renderUserFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": presentUser(user)})
}

// ResetPassword consumes a pending reset token. The path parameter is the
// reset token itself, not a user id.
func ResetPassword(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	user, err := store.ConsumeReset(c.Param("id"), req.Password)
	var vErr *auth.ValidationError
	switch {
	case errors.Is(err, auth.ErrResetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, auth.ErrResetExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		c.JSON(http.StatusOK, gin.H{"user": presentUser(user)})
	}
}

func renderUserFormError(c *gin.Context, err error) {
	var vErr *auth.ValidationError
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
