package handlers

import (
	"errors"
	"net/http"

	"food-delivery-api/auth"
	"food-delivery-api/config"
	"food-delivery-api/models"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns every restaurant.
func ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	config.DB.Find(&restaurants)

	out := make([]gin.H, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, presentRestaurant(&restaurants[i]))
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": out})
}

// GetRestaurant returns a single restaurant by id.
func GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant is not available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": presentRestaurant(&restaurant)})
}

// CreateRestaurant creates a restaurant through the form.
func CreateRestaurant(c *gin.Context) {
	var params RestaurantParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := SaveRestaurant(config.DB, params, 0)
	if err != nil {
		renderRestaurantFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": presentRestaurant(restaurant)})
}

// UpdateRestaurant merges the provided fields into an existing restaurant.
func UpdateRestaurant(c *gin.Context) {
	var target models.Restaurant
	if err := config.DB.First(&target, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "restaurant is not available"})
		return
	}

	var params RestaurantParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	restaurant, err := SaveRestaurant(config.DB, params, target.ID)
	if err != nil {
		renderRestaurantFormError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": presentRestaurant(restaurant)})
}

func renderRestaurantFormError(c *gin.Context, err error) {
	var vErr *auth.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
