package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"edubridge_backend/internal/auth"
	"edubridge_backend/internal/config"
	"edubridge_backend/internal/database"
	"edubridge_backend/internal/email"
	"edubridge_backend/internal/handlers"
	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/routes"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/validator"
	"edubridge_backend/internal/workers"
)

// Run boots the whole application and blocks until shutdown.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	auth.Init(cfg.JWT.Secret, cfg.JWT.TTL)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("admin seed: %w", err)
	}

	router := SetupRouter(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := workers.NewEmailWorker(
		db,
		repositories.NewOutboxRepository(),
		emailProvider(cfg),
		time.Duration(cfg.Outbox.PollIntervalSec)*time.Second,
		cfg.Outbox.BatchSize,
		cfg.Outbox.MaxAttempts,
	)
	go worker.Start(ctx)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", "error", err.Error())
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// SetupRouter assembles middleware, services, handlers and routes over the
// given database handle. Split out so tests can build a router against an
// in-memory store.
func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(),
		middleware.DBMiddleware(db),
	)

	sc := services.NewServiceContainer(validator.New())
	h := handlers.NewAppHandlers(sc)
	routes.RegisterRoutes(router, h, db)

	return router
}

func emailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		return email.NewNoopProvider()
	}
	return email.NewSMTPProvider(cfg)
}

// seedFirstAdmin creates the initial admin account on an empty install so
// the staff surface is reachable.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository()
	if _, err := userRepo.FindByEmail(db, cfg.FirstAdminEmail); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:          "Administrator",
		Email:         cfg.FirstAdminEmail,
		PasswordHash:  hash,
		Role:          models.UserRoleAdmin,
		EmailVerified: true,
	}
	if err := userRepo.Create(db, admin); err != nil {
		return err
	}

	logger.Info("first admin account created", "email", cfg.FirstAdminEmail)
	return nil
}
