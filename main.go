// main.go
package main

import (
	"log"
	"time"

	"cricket-booking/cmd"
	"cricket-booking/internal/data/repository"
	"cricket-booking/internal/gateway"
	"cricket-booking/internal/wire"
	"cricket-booking/pkg/cache"
	"cricket-booking/pkg/database"
	"cricket-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Availability cache is optional; it disables itself when Redis is
	// unreachable and the app keeps serving from Postgres.
	avail := cache.NewAvailability(
		config.Redis.Addr,
		config.Redis.Password,
		config.Redis.DB,
		time.Duration(config.Redis.TTLSeconds)*time.Second,
		logger,
	)
	defer avail.Close()

	// Payment and membership providers
	paymentTimeout := time.Duration(config.Payment.TimeoutSeconds) * time.Second
	checkout := gateway.NewCheckoutClient(gateway.CheckoutConfig{
		BaseURL:    config.Payment.BaseURL,
		SecretKey:  config.Payment.SecretKey,
		SuccessURL: config.Payment.SuccessURL,
		CancelURL:  config.Payment.CancelURL,
		Timeout:    paymentTimeout,
	}, logger)
	memberships := gateway.NewMembershipClient(config.Payment.BaseURL, config.Payment.SecretKey, paymentTimeout, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, checkout, memberships, avail, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
