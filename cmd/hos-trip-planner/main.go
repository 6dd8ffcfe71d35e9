package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/draymaster/services/hos-trip-planner/internal/config"
	"github.com/draymaster/services/hos-trip-planner/internal/events"
	"github.com/draymaster/services/hos-trip-planner/internal/httpapi"
	"github.com/draymaster/services/hos-trip-planner/internal/logger"
	"github.com/draymaster/services/hos-trip-planner/internal/routing"
	"github.com/draymaster/services/hos-trip-planner/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Service.Name, cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting hos-trip-planner...")

	eventProducer := events.NewProducer(cfg.Kafka.Brokers, log)
	defer eventProducer.Close()

	estimator := routing.NewHaversineEstimator()
	tripService := service.NewTripService(estimator, eventProducer, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      httpapi.NewRouter(tripService, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infow("HTTP server listening", "port", cfg.Server.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("HTTP server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down hos-trip-planner...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("hos-trip-planner stopped")
}
