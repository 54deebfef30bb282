package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/skawashin1122/bento-ordering-system/configs"
	"github.com/skawashin1122/bento-ordering-system/controllers"
	"github.com/skawashin1122/bento-ordering-system/entity"
	"github.com/skawashin1122/bento-ordering-system/middlewares"
	"github.com/skawashin1122/bento-ordering-system/repository"
	"github.com/skawashin1122/bento-ordering-system/services"
	"github.com/skawashin1122/bento-ordering-system/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo)
	orderSvc.SetNotifier(hub)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	adminMenuCtrl := controllers.NewAdminMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	staff := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleStore)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Public catalog (available items only)
	r.GET("/menus", menuCtrl.List)
	r.GET("/menus/categories", menuCtrl.Categories)
	r.GET("/menus/:id", menuCtrl.Detail)

	// Orders (customer, owner-scoped)
	o := r.Group("/orders", auth)
	{
		o.POST("", orderCtrl.Create)
		o.GET("", orderCtrl.ListForMe)
		o.GET("/:id", orderCtrl.Detail)
	}

	// Store staff
	admin := r.Group("/admin", staff)
	{
		admin.GET("/menus", adminMenuCtrl.List)
		admin.POST("/menus", adminMenuCtrl.Create)
		admin.GET("/menus/:id", adminMenuCtrl.Detail)
		admin.PATCH("/menus/:id", adminMenuCtrl.Update)
		admin.DELETE("/menus/:id", adminMenuCtrl.Delete)

		admin.GET("/orders", adminOrderCtrl.List)
		admin.GET("/orders/:id", adminOrderCtrl.Detail)
		admin.PATCH("/orders/:id/status", adminOrderCtrl.UpdateStatus)
	}

	// Live order feed for the store dashboard
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(db, cfg.JWTSecret, entity.RoleStore), hub.Handle)
}
