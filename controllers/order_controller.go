package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skawashin1122/bento-ordering-system/pkg/resp"
	"github.com/skawashin1122/bento-ordering-system/services"
	"github.com/skawashin1122/bento-ordering-system/utils"
)

// OrderController is the customer-facing order surface: everything is
// scoped to the authenticated account.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.Create(uid, &in)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders?page=&per_page=&status=
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	out, err := oc.service.ListForUser(
		uid,
		c.Query("status"),
		queryInt(c, "page", 1),
		queryInt(c, "per_page", 0),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id — a foreign order reads as not found
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := oc.service.DetailForUser(uid, uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}
