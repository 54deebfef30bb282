package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skawashin1122/bento-ordering-system/pkg/resp"
	"github.com/skawashin1122/bento-ordering-system/services"
)

// AdminMenuController is the staff-facing catalog management surface;
// unavailable items are visible and editable here.
type AdminMenuController struct {
	service *services.MenuService
}

func NewAdminMenuController(service *services.MenuService) *AdminMenuController {
	return &AdminMenuController{service: service}
}

// GET /admin/menus?limit=&offset=&category=&available_only=
func (ctl *AdminMenuController) List(c *gin.Context) {
	availableOnly, _ := strconv.ParseBool(c.DefaultQuery("available_only", "false"))
	out, err := ctl.service.ListStaff(
		c.Query("category"),
		availableOnly,
		queryInt(c, "limit", 0),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /admin/menus/:id
func (ctl *AdminMenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	menu, err := ctl.service.GetStaff(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// POST /admin/menus
func (ctl *AdminMenuController) Create(c *gin.Context) {
	var in services.MenuCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.service.Create(&in)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.Created(c, menu)
}

// PATCH /admin/menus/:id — only supplied fields change
func (ctl *AdminMenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	var in services.MenuUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	menu, err := ctl.service.Update(uint(id), &in)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /admin/menus/:id — 409 when any order line references it
func (ctl *AdminMenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	if err := ctl.service.Delete(uint(id)); err != nil {
		serviceError(c, err)
		return
	}
	resp.NoContent(c)
}
