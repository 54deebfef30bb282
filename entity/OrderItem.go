package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index;not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `gorm:"index;not null" json:"menuId"`
	Menu   Menu `json:"-"` // preload only when the menu name is needed

	Quantity int `gorm:"not null" json:"quantity"`
	// snapshot of the menu price at order time, decoupled from later edits
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Subtotal  int64 `gorm:"not null" json:"subtotal"`
}
