package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"loteria/api"
	"loteria/config"
	"loteria/database"
	"loteria/repository"
	"loteria/service"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting loteria server...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db)

	// Initialize services
	customerService := service.NewCustomerService(uowFactory)
	lotteryService := service.NewLotteryService(uowFactory)
	saleService := service.NewSaleService(uowFactory, cfg.PrizeClaimDays)
	drawService := service.NewDrawService(uowFactory)
	reportService := service.NewReportService(uowFactory)

	// Initialize HTTP handler
	handler := api.New(customerService, lotteryService, saleService, drawService, reportService, cfg.JWTSecret)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: handler.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.Infof("Server listening on :%s (%s mode)", cfg.HTTPPort, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		db.Close()
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Server shutdown error")
	}

	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}
