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
	"github.com/rs/zerolog/log"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/metrics"
	"hotel-booking/middleware"
	"hotel-booking/routes"
	"hotel-booking/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	logger := config.NewLogger(cfg.LogLevel, nil)
	gin.SetMode(cfg.GinMode)

	db, info, err := config.ConnectDatabase(cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Str("host", info.Host).Str("database", info.Database).Msg("database connect failed")
	}
	logger.Info().Str("host", info.Host).Str("database", info.Database).Msg("database connection established")

	metrics.Register()
	if err := controllers.RegisterValidators(); err != nil {
		logger.Fatal().Err(err).Msg("register validators")
	}

	authSvc, err := services.NewAuthService(cfg.Auth.Username, cfg.Auth.Password, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal().Err(err).Msg("auth setup failed")
	}
	if cfg.Auth.JWTSecret == "change-me" {
		logger.Warn().Msg("AUTH_JWT_SECRET is the default; set it before exposing the API")
	}

	// Services
	roomSvc := services.NewRoomService(db, &logger)
	customerSvc := services.NewCustomerService(db, &logger)
	bookingSvc := services.NewBookingService(db, roomSvc, &logger, services.BookingOptions{
		RestoreAvailabilityOnDelete: cfg.Booking.RestoreAvailabilityOnDelete,
	})
	extraSvc := services.NewExtraService(db, bookingSvc, &logger)
	exportSvc := services.NewExportService(bookingSvc)
	statsSvc := services.NewStatsService(db)
	systemSvc := services.NewSystemService(db, info)

	router := routes.SetupRouter(routes.Deps{
		Log:           &logger,
		Rooms:         controllers.NewRoomController(roomSvc, &logger),
		Customers:     controllers.NewCustomerController(customerSvc, &logger),
		Bookings:      controllers.NewBookingController(bookingSvc, exportSvc, &logger),
		Services:      controllers.NewServiceController(extraSvc, &logger),
		System:        controllers.NewSystemController(systemSvc, statsSvc, &logger),
		Auth:          controllers.NewAuthController(authSvc, &logger),
		Authenticator: authSvc,
		RequireAuth:   cfg.Auth.Required,
		LoginLimiter:  middleware.NewIPRateLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst),
		CORSOrigins:   cfg.CORSOrigins,
		StaticDir:     cfg.StaticDir,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info().Msg("server stopped")
}
