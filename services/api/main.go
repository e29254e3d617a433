package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-platform/services/api/config"
	"ecommerce-platform/services/api/diagnostics"
	"ecommerce-platform/services/api/handlers"
	"ecommerce-platform/services/api/metrics"
	"ecommerce-platform/services/api/rabbitmq"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var publisher handlers.OrderPublisher
	if cfg.OrderEventsEnabled() {
		channelPool, err := rabbitmq.NewChannelPool(cfg.OrderEventsURL, cfg.OrderEventsQueue, cfg.ChannelPoolSize)
		if err != nil {
			log.Fatalf("Failed to create RabbitMQ channel pool: %v", err)
		}
		defer channelPool.Close()

		publisher = rabbitmq.NewPublisher(channelPool, cfg.OrderEventsQueue)
		log.Printf("Publishing order events to queue %s", cfg.OrderEventsQueue)
	}

	apiMetrics := metrics.New()
	router := handlers.NewRouter(publisher, apiMetrics.Middleware())

	if cfg.DiagnosticsPort != "" {
		diagnosticsServer := diagnostics.NewServer(cfg.DiagnosticsPort, apiMetrics.Registry())
		go func() {
			log.Printf("Diagnostics listening on port %s", cfg.DiagnosticsPort)
			if err := diagnosticsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Diagnostics server stopped: %v", err)
			}
		}()
		defer shutdown(diagnosticsServer.Shutdown)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		log.Println("Received shutdown signal, stopping API server...")
		shutdown(server.Shutdown)
	}()

	log.Printf("Server running on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("API server failed: %v", err)
	}
	<-stopped
}

func shutdown(fn func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
