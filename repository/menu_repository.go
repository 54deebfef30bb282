package repository

import (
	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// MenuFilter narrows List. Limit/Offset are assumed pre-clamped by the
// service.
type MenuFilter struct {
	Category      string
	AvailableOnly bool
	Limit         int
	Offset        int
}

// List returns one page plus the total count over the full filtered set.
func (r *MenuRepository) List(f MenuFilter) ([]entity.Menu, int64, error) {
	count := r.DB.Model(&entity.Menu{})
	if f.AvailableOnly {
		count = count.Where("is_available = ?", true)
	}
	if f.Category != "" {
		count = count.Where("category = ?", f.Category)
	}
	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.DB.Model(&entity.Menu{})
	if f.AvailableOnly {
		q = q.Where("is_available = ?", true)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	var menus []entity.Menu
	err := q.Order("created_at DESC, id DESC").Limit(f.Limit).Offset(f.Offset).Find(&menus).Error
	return menus, total, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var menu entity.Menu
	if err := r.DB.First(&menu, id).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// UpdateFields applies a partial update; only supplied columns change.
func (r *MenuRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

// CountOrderItemRefs backs the restrict-delete rule for engines that do
// not enforce foreign keys (SQLite by default).
func (r *MenuRepository) CountOrderItemRefs(menuID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.OrderItem{}).Where("menu_id = ?", menuID).Count(&count).Error
	return count, err
}
