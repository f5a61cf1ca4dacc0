package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rewardsapp/rewards-backend/api/routes"
	"github.com/rewardsapp/rewards-backend/internal/config"
	"github.com/rewardsapp/rewards-backend/internal/handlers"
	"github.com/rewardsapp/rewards-backend/internal/repositories"
	mongorepo "github.com/rewardsapp/rewards-backend/internal/repositories/mongodb"
	"github.com/rewardsapp/rewards-backend/internal/rewards"
	"github.com/rewardsapp/rewards-backend/internal/services"
	"github.com/rewardsapp/rewards-backend/internal/validation"
	"github.com/rewardsapp/rewards-backend/pkg/mongodb"
	"golang.org/x/exp/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			slog.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	var customerRepo repositories.CustomerRepository = mongorepo.NewCustomerRepository(db)
	var transactionRepo repositories.TransactionRepository = mongorepo.NewTransactionRepository(db)

	validator := validation.NewValidator()
	calculator := rewards.NewCalculator()

	rewardService := services.NewRewardService(customerRepo, transactionRepo, validator, calculator)
	guardedService := services.NewBreakerRewardService(rewardService, services.BreakerSettings{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		Timeout:          time.Duration(cfg.Breaker.TimeoutSeconds) * time.Second,
		Interval:         time.Duration(cfg.Breaker.IntervalSeconds) * time.Second,
		MaxRequests:      cfg.Breaker.MaxRequests,
	})

	rewardHandler := handlers.NewRewardHandler(guardedService)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		RewardHandler: rewardHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	slog.Info("Server starting", "port", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exiting")
}

// setupLogger installs a JSON slog handler at the configured level
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
