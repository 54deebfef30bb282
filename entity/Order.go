package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index;not null" json:"userId"`
	User   User `json:"-"`

	Status string `gorm:"not null;default:pending;index" json:"status"`
	// computed once at creation, never recomputed by status changes
	Total int64 `gorm:"not null" json:"total"`

	DeliveryAddress string     `gorm:"not null" json:"deliveryAddress"`
	DeliveryTime    *time.Time `json:"deliveryTime"`
	Notes           string     `json:"notes"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}
