package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skawashin1122/bento-ordering-system/entity"
	"github.com/skawashin1122/bento-ordering-system/repository"
)

func TestCreateOrderComputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)
	yakiniku := seedMenu(t, db, "焼肉弁当", 700, true)

	out, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderItemIn{
			{MenuID: karaage.ID, Quantity: 2},
			{MenuID: yakiniku.ID, Quantity: 1},
		},
		DeliveryAddress: "東京都千代田区1-1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1700), out.Total)
	assert.Equal(t, entity.StatusPending, out.Status)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(1000), out.Items[0].Subtotal)
	assert.Equal(t, int64(700), out.Items[1].Subtotal)
	assert.Equal(t, "唐揚げ弁当", out.Items[0].MenuName)

	// invariant: subtotal = quantity × unit_price, total = Σ subtotal
	var sum int64
	for _, it := range out.Items {
		assert.Equal(t, it.Subtotal, int64(it.Quantity)*it.UnitPrice)
		sum += it.Subtotal
	}
	assert.Equal(t, out.Total, sum)
}

func TestCreateOrderUnknownMenuNoPartialCommit(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderItemIn{
			{MenuID: karaage.ID, Quantity: 1},
			{MenuID: 9999, Quantity: 1},
		},
		DeliveryAddress: "東京都千代田区1-1",
	})
	require.ErrorIs(t, err, ErrMenuNotFound)
	assert.Contains(t, err.Error(), "9999")

	var orders, items int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&entity.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders, "no order row may survive a failed creation")
	assert.Zero(t, items, "no line rows may survive a failed creation")
}

func TestCreateOrderUnavailableMenu(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	soldOut := seedMenu(t, db, "鮭弁当", 600, false)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: soldOut.ID, Quantity: 1}},
		DeliveryAddress: "東京都千代田区1-1",
	})
	require.ErrorIs(t, err, ErrMenuUnavailable)
	assert.Contains(t, err.Error(), "鮭弁当")

	var orders int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCreateOrderRejectsEmptyAndBadQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	_, err := svc.Create(user.ID, &CreateOrderIn{DeliveryAddress: "x"})
	require.ErrorIs(t, err, ErrEmptyOrder)

	_, err = svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 0}},
		DeliveryAddress: "x",
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUnitPriceSnapshotSurvivesPriceEdit(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	out, err := svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 2}},
		DeliveryAddress: "東京都千代田区1-1",
	})
	require.NoError(t, err)

	// staff raises the price afterwards
	require.NoError(t, db.Model(&entity.Menu{}).Where("id = ?", karaage.ID).Update("price", 999).Error)

	reloaded, err := svc.DetailForUser(user.ID, out.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, int64(500), reloaded.Items[0].UnitPrice)
	assert.Equal(t, int64(1000), reloaded.Total)
}

func TestCustomerCannotSeeForeignOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	owner := seedUser(t, db, "owner@example.com", entity.RoleCustomer)
	other := seedUser(t, db, "other@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	out, err := svc.Create(owner.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
		DeliveryAddress: "東京都千代田区1-1",
	})
	require.NoError(t, err)

	// not-found, not forbidden: existence is not confirmed
	_, err = svc.DetailForUser(other.ID, out.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	// staff retrieval is unscoped
	detail, err := svc.DetailForStaff(out.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, detail.UserID)
}

func TestListForUserPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	for i := 0; i < 25; i++ {
		_, err := svc.Create(user.ID, &CreateOrderIn{
			Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
			DeliveryAddress: fmt.Sprintf("住所 %d", i),
		})
		require.NoError(t, err)
	}

	out, err := svc.ListForUser(user.ID, "", 2, 10)
	require.NoError(t, err)
	assert.Len(t, out.Items, 10)
	assert.Equal(t, int64(25), out.Total)
	assert.Equal(t, 3, out.TotalPages)
	assert.Equal(t, 2, out.Page)
}

func TestListForUserStatusFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	first, err := svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
		DeliveryAddress: "x",
	})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
		DeliveryAddress: "y",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, entity.StatusPreparing)
	require.NoError(t, err)

	out, err := svc.ListForUser(user.ID, entity.StatusPreparing, 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, first.ID, out.Items[0].ID)
	assert.Equal(t, int64(1), out.Total)

	_, err = svc.ListForUser(user.ID, "bogus", 1, 10)
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestListAllIncludesItemCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)
	yakiniku := seedMenu(t, db, "焼肉弁当", 700, true)

	_, err := svc.Create(user.ID, &CreateOrderIn{
		Items: []OrderItemIn{
			{MenuID: karaage.ID, Quantity: 2},
			{MenuID: yakiniku.ID, Quantity: 3},
		},
		DeliveryAddress: "x",
	})
	require.NoError(t, err)

	out, err := svc.ListAll("", 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(5), out.Items[0].ItemsCount)
	assert.Equal(t, "テスト", out.Items[0].CustomerName)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	out, err := svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
		DeliveryAddress: "x",
	})
	require.NoError(t, err)

	// skipping a state is rejected
	_, err = svc.UpdateStatus(out.ID, entity.StatusDelivered)
	require.ErrorIs(t, err, ErrInvalidTransition)

	for _, next := range []string{entity.StatusPreparing, entity.StatusReady, entity.StatusDelivered} {
		updated, err := svc.UpdateStatus(out.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
		// total untouched by transitions
		assert.Equal(t, out.Total, updated.Total)
	}

	// delivered is terminal
	_, err = svc.UpdateStatus(out.ID, entity.StatusCancelled)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(9999, entity.StatusPreparing)
	require.ErrorIs(t, err, ErrOrderNotFound)

	_, err = svc.UpdateStatus(out.ID, "shipped")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCancelFromNonTerminalStates(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	for _, prep := range [][]string{
		{},
		{entity.StatusPreparing},
		{entity.StatusPreparing, entity.StatusReady},
	} {
		out, err := svc.Create(user.ID, &CreateOrderIn{
			Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
			DeliveryAddress: "x",
		})
		require.NoError(t, err)
		for _, next := range prep {
			_, err := svc.UpdateStatus(out.ID, next)
			require.NoError(t, err)
		}

		cancelled, err := svc.UpdateStatus(out.ID, entity.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	}
}

type captureNotifier struct {
	events []OrderEvent
}

func (n *captureNotifier) Publish(ev OrderEvent) { n.events = append(n.events, ev) }

func TestOrderEventsPublished(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(db, repository.NewOrderRepository(db))
	notifier := &captureNotifier{}
	svc.SetNotifier(notifier)

	user := seedUser(t, db, "taro@example.com", entity.RoleCustomer)
	karaage := seedMenu(t, db, "唐揚げ弁当", 500, true)

	out, err := svc.Create(user.ID, &CreateOrderIn{
		Items:           []OrderItemIn{{MenuID: karaage.ID, Quantity: 1}},
		DeliveryAddress: "x",
	})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(out.ID, entity.StatusPreparing)
	require.NoError(t, err)

	require.Len(t, notifier.events, 2)
	assert.Equal(t, "order_created", notifier.events[0].Type)
	assert.Equal(t, "status_changed", notifier.events[1].Type)
	assert.Equal(t, entity.StatusPreparing, notifier.events[1].Status)
}
