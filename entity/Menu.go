package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryMeat      = "meat"
	CategoryFish      = "fish"
	CategoryVegetable = "vegetable"
	CategoryOther     = "other"
)

func MenuCategories() []string {
	return []string{CategoryMeat, CategoryFish, CategoryVegetable, CategoryOther}
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryMeat, CategoryFish, CategoryVegetable, CategoryOther:
		return true
	}
	return false
}

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"` // yen, no decimal places
	Category    string `gorm:"not null;default:other;index" json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsAvailable bool   `gorm:"not null;default:true" json:"isAvailable"`

	// restrict-deleted: a menu referenced by order items cannot be removed
	OrderItems []OrderItem `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
