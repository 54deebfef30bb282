package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skawashin1122/bento-ordering-system/pkg/resp"
	"github.com/skawashin1122/bento-ordering-system/services"
)

// AdminOrderController is the staff order surface: unscoped listing and
// lifecycle transitions. Role enforcement happens in the middleware,
// before any order is looked up.
type AdminOrderController struct {
	service *services.OrderService
}

func NewAdminOrderController(service *services.OrderService) *AdminOrderController {
	return &AdminOrderController{service: service}
}

// GET /admin/orders?page=&per_page=&status=
func (oc *AdminOrderController) List(c *gin.Context) {
	out, err := oc.service.ListAll(
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

// GET /admin/orders/:id
func (oc *AdminOrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	order, err := oc.service.DetailForStaff(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/orders/:id/status
func (oc *AdminOrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.service.UpdateStatus(uint(id), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, order)
}
