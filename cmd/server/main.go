package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vendorhub/vendor-approval-api/internal/cache"
	"github.com/vendorhub/vendor-approval-api/internal/config"
	"github.com/vendorhub/vendor-approval-api/internal/dao"
	"github.com/vendorhub/vendor-approval-api/internal/database"
	"github.com/vendorhub/vendor-approval-api/internal/router"
	"github.com/vendorhub/vendor-approval-api/internal/service"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Local development secrets; a missing .env is fine
	_ = godotenv.Load()

	// Set Gin to release mode by default (can be overridden by GIN_MODE env var)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting Vendor Approval API Server...")

	// Priority: CONFIG_PATH env var > repository/conf/deployment.yaml > cmd/server/repository/conf/deployment.yaml
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	config.SetGlobal(cfg)

	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Logging.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.WithFields(logrus.Fields{
		"config_path": configPath,
		"log_level":   logger.GetLevel().String(),
		"db_type":     cfg.Database.Type,
	}).Info("Configuration loaded successfully")

	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.HealthCheck(ctx); err != nil {
		cancel()
		logger.WithError(err).Fatal("Database health check failed")
	}
	cancel()
	logger.Info("Database connection established successfully")

	applicationDAO := dao.NewVendorApplicationDAO(db)
	historyDAO := dao.NewApprovalHistoryDAO(db)
	vendorDAO := dao.NewVendorDAO(db)
	employeeDAO := dao.NewEmployeeDAO(db)

	var employeeCache *cache.EmployeeCache
	if cfg.Redis.Enabled {
		redisClient := cache.NewRedis(cfg.Redis)
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(ctx); err != nil {
			logger.WithError(err).Warn("Redis unreachable, employee lookups will read the database")
		}
		cancel()
		employeeCache = cache.NewEmployeeCache(redisClient.Client, cfg.Redis.EmployeeCacheTTL)
	}

	validator, err := service.NewSubmissionValidator()
	if err != nil {
		logger.WithError(err).Fatal("Failed to compile submission schema")
	}

	employees := service.NewEmployeeDirectory(employeeDAO, employeeCache, logger)
	history := service.NewHistoryService(historyDAO, employees, logger)
	approvals := service.NewApprovalService(applicationDAO, history, vendorDAO, employees.Fresh(), db, validator, logger)

	logger.Info("Services initialized successfully")

	ginRouter := router.SetupRouter(cfg, approvals, db, logger)

	serverAddr := cfg.Server.GetServerAddress()
	server := &http.Server{
		Addr:           serverAddr,
		Handler:        ginRouter,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	go func() {
		logger.WithField("addr", serverAddr).Info("Starting HTTP server...")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	db.LogStats()
	logger.Info("Server exited gracefully")
}
