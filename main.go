package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/microblog/api-go/config"
	"github.com/microblog/api-go/middleware"
	"github.com/microblog/api-go/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load config: %s", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("unable to initialize logger: %s", err)
	}
	defer logger.Sync()

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if cfg.SeedData {
		if err := config.Seed(db); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.Static("/static", cfg.StaticDir)

	routes.SetupRoutes(r, db, cfg, logger)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
