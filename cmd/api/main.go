package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/doctors-portal-api/internal/config"
	dbpkg "github.com/BruksfildServices01/doctors-portal-api/internal/db"
	"github.com/BruksfildServices01/doctors-portal-api/internal/logger"
	"github.com/BruksfildServices01/doctors-portal-api/internal/middleware"
	"github.com/BruksfildServices01/doctors-portal-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg)
	defer log.Sync()

	database := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
