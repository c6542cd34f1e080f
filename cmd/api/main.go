package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/straatbeeld/werkorder-api/api/swagger"
	"github.com/straatbeeld/werkorder-api/internal/handler"
	"github.com/straatbeeld/werkorder-api/internal/middleware"
	"github.com/straatbeeld/werkorder-api/internal/repository"
	"github.com/straatbeeld/werkorder-api/internal/service"
	"github.com/straatbeeld/werkorder-api/pkg/cache"
	"github.com/straatbeeld/werkorder-api/pkg/config"
	"github.com/straatbeeld/werkorder-api/pkg/database"
	"github.com/straatbeeld/werkorder-api/pkg/logger"
	corsmiddleware "github.com/straatbeeld/werkorder-api/pkg/middleware/cors"
	reqidmiddleware "github.com/straatbeeld/werkorder-api/pkg/middleware/requestid"
)

// @title Straatmeubilair Werkorder API
// @version 1.0.0
// @description Work-order management for municipal street furniture
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			// The cache is an optimization; the API stays up without it.
			logr.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	orderRepo := repository.NewWorkOrderRepository(db)
	logRepo := repository.NewWorkOrderLogRepository(db)

	orderSvc := service.NewWorkOrderService(orderRepo, logRepo, cacheSvc, validator.New(), logr)

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(orderRepo, logr)
	}

	orderHandler := newWorkOrderHandler(orderSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		// Public submission surface used by the request forms.
		api.GET("/requests", orderHandler.List)
		api.POST("/requests", orderHandler.Create)
		api.GET("/requests/:id", orderHandler.Get)

		// Staff surface used by the tracking dashboard and map.
		api.GET("/work-orders", orderHandler.List)
		api.GET("/work-orders/stats", orderHandler.Stats)
		api.GET("/work-orders/export", orderHandler.ExportCSV)
		api.GET("/work-orders/:id", orderHandler.Get)
		api.PATCH("/work-orders/:id", orderHandler.Update)
		api.GET("/work-orders/:id/logs", orderHandler.Logs)
		api.GET("/work-orders/:id/pdf", orderHandler.ExportPDF)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newWorkOrderHandler keeps the nil-interface subtlety in one place:
// a nil *ExportService must become a nil interface, not a typed nil.
func newWorkOrderHandler(orderSvc *service.WorkOrderService, exportSvc *service.ExportService) *handler.WorkOrderHandler {
	if exportSvc == nil {
		return handler.NewWorkOrderHandler(orderSvc, nil)
	}
	return handler.NewWorkOrderHandler(orderSvc, exportSvc)
}
