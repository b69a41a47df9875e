package models

import "time"

type Restaurant struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	Address             string    `json:"address"`
	Area                string    `json:"area"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	Rating              float64   `json:"rating"`
	AverageDeliveryTime int       `json:"average_delivery_time"`
	AverageCostPerTwo   float64   `json:"average_cost_per_two"`
	ManagerID           uint      `json:"manager_id" gorm:"index"`
	Manager             User      `json:"-" gorm:"foreignKey:ManagerID"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
