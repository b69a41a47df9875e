package handlers

import (
	"fmt"

	"food-delivery-api/auth"
	"food-delivery-api/models"

	"gorm.io/gorm"
)

// RestaurantParams is the explicit input for creating or updating a
// restaurant record.
type RestaurantParams struct {
	Name                *string  `json:"name"`
	Address             *string  `json:"address"`
	Area                *string  `json:"area"`
	City                *string  `json:"city"`
	State               *string  `json:"state"`
	Rating              *float64 `json:"rating"`
	AverageDeliveryTime *int     `json:"average_delivery_time"`
	AverageCostPerTwo   *float64 `json:"average_cost_per_two"`
	ManagerID           *uint    `json:"manager_id"`
}

func applyRestaurantParams(r *models.Restaurant, p RestaurantParams) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Area != nil {
		r.Area = *p.Area
	}
	if p.City != nil {
		r.City = *p.City
	}
	if p.State != nil {
		r.State = *p.State
	}
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.AverageDeliveryTime != nil {
		r.AverageDeliveryTime = *p.AverageDeliveryTime
	}
	if p.AverageCostPerTwo != nil {
		r.AverageCostPerTwo = *p.AverageCostPerTwo
	}
	if p.ManagerID != nil {
		r.ManagerID = *p.ManagerID
	}
}

func validateRestaurant(r *models.Restaurant) error {
	required := []struct{ label, value string }{
		{"Name", r.Name},
		{"Address", r.Address},
		{"Area", r.Area},
		{"City", r.City},
		{"State", r.State},
	}
	for _, f := range required {
		if f.value == "" {
			return &auth.ValidationError{Message: f.label + " can't be blank"}
		}
	}
	if r.AverageDeliveryTime == 0 {
		return &auth.ValidationError{Message: "Average delivery time can't be blank"}
	}
	if r.AverageCostPerTwo == 0 {
		return &auth.ValidationError{Message: "Average cost per two can't be blank"}
	}
	if r.ManagerID == 0 {
		return &auth.ValidationError{Message: "Manager can't be blank"}
	}
	if r.Rating < 0 || r.Rating > 5 {
		return &auth.ValidationError{Message: "Rating is not included in the list"}
	}
	return nil
}

// SaveRestaurant loads the target record (or starts a fresh one), merges
// the provided fields, validates, and writes back.
func SaveRestaurant(db *gorm.DB, params RestaurantParams, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if id != 0 {
		if err := db.First(&restaurant, id).Error; err != nil {
			return nil, fmt.Errorf("find restaurant: %w", err)
		}
	}

	applyRestaurantParams(&restaurant, params)
	if err := validateRestaurant(&restaurant); err != nil {
		return nil, err
	}

	if err := db.Save(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("save restaurant: %w", err)
	}
	return &restaurant, nil
}
