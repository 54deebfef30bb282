package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/entity"
	"github.com/skawashin1122/bento-ordering-system/repository"
)

// MenuService covers both the public catalog and staff management.
type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

const (
	menuDefaultLimit = 50
	menuMaxLimit     = 100
)

type MenuListOut struct {
	Items  []entity.Menu `json:"items"`
	Total  int64         `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

func clampMenuPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = menuDefaultLimit
	}
	if limit > menuMaxLimit {
		limit = menuMaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListPublic returns available items only.
func (s *MenuService) ListPublic(category string, limit, offset int) (*MenuListOut, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	limit, offset = clampMenuPage(limit, offset)

	items, total, err := s.repo.List(repository.MenuFilter{
		Category:      category,
		AvailableOnly: true,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	return &MenuListOut{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// GetPublic hides unavailable items: they read as not found, same as
// absent ones.
func (s *MenuService) GetPublic(id uint) (*entity.Menu, error) {
	menu, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	if !menu.IsAvailable {
		return nil, ErrMenuNotFound
	}
	return menu, nil
}

// ListStaff can include unavailable items.
func (s *MenuService) ListStaff(category string, availableOnly bool, limit, offset int) (*MenuListOut, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	limit, offset = clampMenuPage(limit, offset)

	items, total, err := s.repo.List(repository.MenuFilter{
		Category:      category,
		AvailableOnly: availableOnly,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	return &MenuListOut{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *MenuService) GetStaff(id uint) (*entity.Menu, error) {
	menu, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}

type MenuCreateIn struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=1000"`
	Price       int64  `json:"price" binding:"min=0"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"max=500"`
	IsAvailable *bool  `json:"isAvailable"`
}

func (s *MenuService) Create(in *MenuCreateIn) (*entity.Menu, error) {
	if !entity.ValidCategory(in.Category) {
		return nil, ErrInvalidCategory
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	menu := &entity.Menu{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		IsAvailable: available,
	}
	if err := s.repo.Create(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// MenuUpdateIn uses pointers so absent fields stay untouched.
type MenuUpdateIn struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Price       *int64  `json:"price"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,max=500"`
	IsAvailable *bool   `json:"isAvailable"`
}

func (s *MenuService) Update(id uint, in *MenuUpdateIn) (*entity.Menu, error) {
	if _, err := s.GetStaff(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, ErrNegativePrice
		}
		updates["price"] = *in.Price
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, ErrInvalidCategory
		}
		updates["category"] = *in.Category
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateFields(id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.FindByID(id)
}

// Delete removes an item unless any order line references it; order
// history keeps its menu rows.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.GetStaff(id); err != nil {
		return err
	}

	refs, err := s.repo.CountOrderItemRefs(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrMenuReferenced
	}
	return s.repo.Delete(id)
}
