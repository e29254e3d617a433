package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ecommerce-platform/services/order-events-tail/config"
	"ecommerce-platform/services/order-events-tail/consumer"

	amqp "github.com/rabbitmq/amqp091-go"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	conn, err := amqp.Dial(cfg.OrderEventsURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := consumer.NewEventLog()
	if err := consumer.NewTail(conn, cfg.OrderEventsQueue, cfg.NumWorkers, events).Run(ctx); err != nil {
		log.Printf("Order events tail stopped: %v", err)
	}

	events.PrintSummary(os.Stdout)
}
