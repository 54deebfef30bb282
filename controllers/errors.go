package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/pkg/resp"
	"github.com/skawashin1122/bento-ordering-system/services"
)

// serviceError maps service sentinels onto the HTTP error taxonomy.
// Anything unrecognized is an internal error: logged, not leaked.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMenuNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrMenuReferenced):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrMenuUnavailable),
		errors.Is(err, services.ErrInvalidTransition):
		resp.Unprocessable(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidCategory),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrInvalidRole):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
