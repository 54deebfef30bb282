package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/entity"
	"github.com/skawashin1122/bento-ordering-system/repository"
)

// OrderEvent is pushed to the staff live feed on creation and status
// changes.
type OrderEvent struct {
	Type    string `json:"type"` // order_created | status_changed
	OrderID uint   `json:"orderId"`
	Status  string `json:"status"`
	Total   int64  `json:"total"`
}

// OrderNotifier receives order events. Publish must not block.
type OrderNotifier interface {
	Publish(OrderEvent)
}

// OrderService validates, prices and persists orders, and drives the
// status lifecycle.
type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	notifier OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo}
}

func (s *OrderService) SetNotifier(n OrderNotifier) {
	s.notifier = n
}

func (s *OrderService) publish(ev OrderEvent) {
	if s.notifier != nil {
		s.notifier.Publish(ev)
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderIn struct {
	Items           []OrderItemIn `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string        `json:"deliveryAddress" binding:"required,max=500"`
	DeliveryTime    *time.Time    `json:"deliveryTime"`
	Notes           string        `json:"notes" binding:"max=1000"`
}

type OrderItemOut struct {
	ID        uint   `json:"id"`
	MenuID    uint   `json:"menuId"`
	MenuName  string `json:"menuName"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Subtotal  int64  `json:"subtotal"`
}

type OrderDetail struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"userId"`
	Status          string         `json:"status"`
	Total           int64          `json:"total"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryTime    *time.Time     `json:"deliveryTime"`
	Notes           string         `json:"notes,omitempty"`
	Items           []OrderItemOut `json:"items"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

func orderDetailFrom(o *entity.Order) *OrderDetail {
	items := make([]OrderItemOut, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemOut{
			ID:        it.ID,
			MenuID:    it.MenuID,
			MenuName:  it.Menu.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return &OrderDetail{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.Status,
		Total:           o.Total,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryTime:    o.DeliveryTime,
		Notes:           o.Notes,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ----- creation -----

// Create validates the requested lines in submission order, snapshots
// unit prices, computes the total and writes the order and its lines as
// one transaction. Any failure aborts the whole order. The returned
// order is fully hydrated, no follow-up read needed.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*OrderDetail, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	var orderID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var total int64
		rows := make([]entity.OrderItem, 0, len(in.Items))

		for i, it := range in.Items {
			// shape validation happens at the boundary; re-check anyway
			if it.Quantity < 1 {
				return fmt.Errorf("line %d: %w", i+1, ErrInvalidQuantity)
			}

			m, err := s.Repo.GetMenuForOrder(tx, it.MenuID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("line %d: menu %d: %w", i+1, it.MenuID, ErrMenuNotFound)
				}
				return err
			}
			if !m.IsAvailable {
				return fmt.Errorf("line %d: %s: %w", i+1, m.Name, ErrMenuUnavailable)
			}

			unit := m.Price
			subtotal := unit * int64(it.Quantity)
			total += subtotal

			rows = append(rows, entity.OrderItem{
				MenuID:    m.ID,
				Quantity:  it.Quantity,
				UnitPrice: unit,
				Subtotal:  subtotal,
			})
		}

		order := entity.Order{
			UserID:          userID,
			Status:          entity.StatusPending,
			Total:           total,
			DeliveryAddress: in.DeliveryAddress,
			DeliveryTime:    in.DeliveryTime,
			Notes:           in.Notes,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i := range rows {
			rows[i].OrderID = order.ID
			if err := s.Repo.CreateOrderItem(tx, &rows[i]); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	hydrated, err := s.Repo.GetOrderWithItems(orderID, &userID)
	if err != nil {
		return nil, err
	}

	detail := orderDetailFrom(hydrated)
	s.publish(OrderEvent{Type: "order_created", OrderID: detail.ID, Status: detail.Status, Total: detail.Total})
	return detail, nil
}

// ----- retrieval -----

const (
	orderDefaultPerPage = 10
	orderMaxPerPage     = 50
)

type OrderSummary struct {
	ID              uint       `json:"id"`
	Status          string     `json:"status"`
	Total           int64      `json:"total"`
	DeliveryAddress string     `json:"deliveryAddress"`
	DeliveryTime    *time.Time `json:"deliveryTime"`
	CreatedAt       time.Time  `json:"createdAt"`
	ItemsCount      int64      `json:"itemsCount"`
}

type OrderListOut struct {
	Items      []OrderSummary `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PerPage    int            `json:"perPage"`
	TotalPages int            `json:"totalPages"`
}

func clampOrderPage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = orderDefaultPerPage
	}
	if perPage > orderMaxPerPage {
		perPage = orderMaxPerPage
	}
	return page, perPage
}

// ListForUser returns the owner's orders, newest first.
func (s *OrderService) ListForUser(userID uint, status string, page, perPage int) (*OrderListOut, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	page, perPage = clampOrderPage(page, perPage)

	orders, total, err := s.Repo.List(repository.OrderFilter{
		UserID: &userID,
		Status: status,
		Page:   page,
		Limit:  perPage,
	})
	if err != nil {
		return nil, err
	}
	return s.buildListOut(orders, total, page, perPage)
}

// DetailForUser is owner-scoped: a foreign order reads as not found, so
// its existence is never confirmed.
func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderWithItems(orderID, &userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return orderDetailFrom(o), nil
}

type StaffOrderSummary struct {
	OrderSummary
	UserID       uint   `json:"userId"`
	CustomerName string `json:"customerName"`
}

type StaffOrderListOut struct {
	Items      []StaffOrderSummary `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PerPage    int                 `json:"perPage"`
	TotalPages int                 `json:"totalPages"`
}

// ListAll is the unscoped staff listing with per-order item counts.
func (s *OrderService) ListAll(status string, page, perPage int) (*StaffOrderListOut, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	page, perPage = clampOrderPage(page, perPage)

	orders, total, err := s.Repo.List(repository.OrderFilter{
		Status:   status,
		Page:     page,
		Limit:    perPage,
		WithUser: true,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	counts, err := s.Repo.ItemsCount(ids)
	if err != nil {
		return nil, err
	}

	items := make([]StaffOrderSummary, 0, len(orders))
	for _, o := range orders {
		items = append(items, StaffOrderSummary{
			OrderSummary: OrderSummary{
				ID:              o.ID,
				Status:          o.Status,
				Total:           o.Total,
				DeliveryAddress: o.DeliveryAddress,
				DeliveryTime:    o.DeliveryTime,
				CreatedAt:       o.CreatedAt,
				ItemsCount:      counts[o.ID],
			},
			UserID:       o.UserID,
			CustomerName: o.User.Name,
		})
	}
	return &StaffOrderListOut{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// DetailForStaff is unscoped.
func (s *OrderService) DetailForStaff(orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderWithItems(orderID, nil)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return orderDetailFrom(o), nil
}

func (s *OrderService) buildListOut(orders []entity.Order, total int64, page, perPage int) (*OrderListOut, error) {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	counts, err := s.Repo.ItemsCount(ids)
	if err != nil {
		return nil, err
	}

	items := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		items = append(items, OrderSummary{
			ID:              o.ID,
			Status:          o.Status,
			Total:           o.Total,
			DeliveryAddress: o.DeliveryAddress,
			DeliveryTime:    o.DeliveryTime,
			CreatedAt:       o.CreatedAt,
			ItemsCount:      counts[o.ID],
		})
	}
	return &OrderListOut{
		Items:      items,
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages(total, perPage),
	}, nil
}

func totalPages(total int64, perPage int) int {
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// ----- status lifecycle -----

// UpdateStatus moves an order along the lifecycle. Only forward
// transitions are allowed; cancelled works from any non-terminal state.
// Total and lines are never touched.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*OrderDetail, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !ValidTransition(o.Status, newStatus) {
		return nil, fmt.Errorf("%s → %s: %w", o.Status, newStatus, ErrInvalidTransition)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			// the order moved under us; report as an invalid transition
			return fmt.Errorf("%s → %s: %w", o.Status, newStatus, ErrInvalidTransition)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail, err := s.DetailForStaff(o.ID)
	if err != nil {
		return nil, err
	}
	s.publish(OrderEvent{Type: "status_changed", OrderID: detail.ID, Status: detail.Status, Total: detail.Total})
	return detail, nil
}
