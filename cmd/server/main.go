package main

import (
	"os"

	"github.com/devtasks/devtasks/internal/auth"
	"github.com/devtasks/devtasks/internal/config"
	"github.com/devtasks/devtasks/internal/handlers"
	"github.com/devtasks/devtasks/internal/middleware"
	"github.com/devtasks/devtasks/internal/models"
	"github.com/devtasks/devtasks/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	db, err := models.Open(&cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewManager(cfg.JWT.Secret, cfg.JWT.ExpireHour)

	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.Use(middleware.CORS(cfg.CORS.Origins))

	handlers.RegisterRoutes(r, db, tokens)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Infof("Listening on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
