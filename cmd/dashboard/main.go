package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"montecampo/internal/dashboard"
	"montecampo/pkg/config"
	"montecampo/pkg/kafka"
	kafka_config "montecampo/pkg/kafka/config"
)

const (
	ServiceName = "dashboard"

	eventsTopic    = "reservation-events"
	eventsDLQTopic = "reservation-events-dlq"
	consumerGroup  = "dashboard"

	feedSize = 500
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting dashboard consumer")

	feed := dashboard.NewFeed(feedSize, cfg.Log)

	consumer, err := kafka.NewConsumer(kafka_config.Load(), eventsTopic, consumerGroup, eventsDLQTopic, feed.Handle)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-shutdown
		cfg.Log.Info("Shutdown signal received", "signal", sig)
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
	cfg.Log.Info("Dashboard consumer stopped")
}
