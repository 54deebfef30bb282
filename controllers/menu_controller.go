package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/skawashin1122/bento-ordering-system/entity"
	"github.com/skawashin1122/bento-ordering-system/pkg/resp"
	"github.com/skawashin1122/bento-ordering-system/services"
)

// MenuController is the public (customer-facing) catalog: available
// items only.
type MenuController struct {
	service *services.MenuService
}

func NewMenuController(service *services.MenuService) *MenuController {
	return &MenuController{service: service}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GET /menus?limit=&offset=&category=
func (ctl *MenuController) List(c *gin.Context) {
	out, err := ctl.service.ListPublic(
		c.Query("category"),
		queryInt(c, "limit", 0),
		queryInt(c, "offset", 0),
	)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menus/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}
	menu, err := ctl.service.GetPublic(uint(id))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, menu)
}

// GET /menus/categories
func (ctl *MenuController) Categories(c *gin.Context) {
	resp.OK(c, entity.MenuCategories())
}
