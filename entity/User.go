package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleStore    = "store"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Name     string `gorm:"not null" json:"name"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`

	Orders []Order `json:"-"`
}

func ValidRole(r string) bool {
	return r == RoleCustomer || r == RoleStore
}
