package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/skawashin1122/bento-ordering-system/configs"
	"github.com/skawashin1122/bento-ordering-system/middlewares"
	"github.com/skawashin1122/bento-ordering-system/routes"
	"github.com/skawashin1122/bento-ordering-system/ws"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedStore(db, cfg); err != nil {
		log.Fatalf("seed store account failed: %v", err)
	}
	if cfg.SeedMenuData {
		if err := configs.SeedMenus(db); err != nil {
			log.Fatalf("seed menus failed: %v", err)
		}
	}

	hub := ws.NewOrderHub()
	go hub.Run()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(logger))
	routes.RegisterRoutes(r, db, cfg, hub)

	logger.Info("listening", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
