package repository

import (
	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- creation (inside a transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// GetMenuForOrder reads the columns order creation needs, on the
// creation transaction so the price snapshot and the availability check
// see the same row.
func (r *OrderRepository) GetMenuForOrder(tx *gorm.DB, menuID uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := tx.Select("id, name, price, is_available").First(&m, menuID).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ---------------- retrieval ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithItems loads the order with an explicit fetch plan
// (items + their menus in one pass, no lazy per-row lookups). A non-nil
// userID scopes the read to that owner.
func (r *OrderRepository) GetOrderWithItems(orderID uint, userID *uint) (*entity.Order, error) {
	q := r.DB.Preload("Items").Preload("Items.Menu").Where("id = ?", orderID)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	var o entity.Order
	if err := q.First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OrderFilter narrows List. A nil UserID means unscoped (staff).
type OrderFilter struct {
	UserID   *uint
	Status   string
	Page     int
	Limit    int
	WithUser bool
}

// List returns one page ordered by creation time descending, plus the
// total count computed over the full filtered set.
func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	offset := (f.Page - 1) * f.Limit

	count := r.DB.Model(&entity.Order{})
	if f.UserID != nil {
		count = count.Where("user_id = ?", *f.UserID)
	}
	if f.Status != "" {
		count = count.Where("status = ?", f.Status)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.DB.Model(&entity.Order{})
	if f.WithUser {
		q = q.Preload("User")
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var orders []entity.Order
	err := q.Order("created_at DESC, id DESC").Limit(f.Limit).Offset(offset).Find(&orders).Error
	return orders, total, err
}

// ItemsCount returns the summed quantities per order for one page of
// orders, in a single grouped query.
func (r *OrderRepository) ItemsCount(orderIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		OrderID uint
		Count   int64
	}
	err := r.DB.Model(&entity.OrderItem{}).
		Select("order_id, SUM(quantity) AS count").
		Where("order_id IN ?", orderIDs).
		Group("order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.OrderID] = row.Count
	}
	return out, nil
}

// ---------------- status ----------------

// UpdateStatusGuard moves the order from one status to another only if
// it is still in the expected one; RowsAffected 0 means a lost race or
// an invalid transition.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
