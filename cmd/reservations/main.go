package main

import (
	"time"

	"montecampo/internal/availability"
	availhandler "montecampo/internal/availability/handler"
	"montecampo/internal/catalog"
	"montecampo/internal/notifications"
	reshandler "montecampo/internal/reservations/handler"
	"montecampo/internal/reservations/service"
	"montecampo/internal/reservations/store"
	"montecampo/internal/reservations/validator"
	"montecampo/pkg/app"
	"montecampo/pkg/config"
	"montecampo/pkg/contracts"
	"montecampo/pkg/kafka"
	kafka_config "montecampo/pkg/kafka/config"

	"github.com/julienschmidt/httprouter"
)

const (
	ServiceName = "reservations"

	eventsTopic    = "reservation-events"
	eventsDLQTopic = "reservation-events-dlq"

	slotLockTTL       = 30 * time.Second
	dashboardFeedSize = 100
)

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting reservations service")

	cat, err := catalog.Load()
	if err != nil {
		cfg.Log.Fatal("Failed to load unit catalog", "error", err)
	}

	st := store.New()
	avail := availability.NewService(cat, st, cfg.Log)

	dispatcher, producer := initNotifications(cfg)
	dispatcher.Start()

	reservationService := service.NewService(
		cat,
		avail,
		st,
		store.NewSlotLocks(slotLockTTL),
		dispatcher,
		cfg.Rules,
		cfg.Log,
	)
	bookingValidator := validator.NewBookingValidator(cfg.Rules, cfg.Log)

	api := apiHandler{
		availhandler.NewUnitsHandler(cat, avail, cfg.Rules.DepositFraction, cfg.Log),
		reshandler.NewReservationHandler(reservationService, bookingValidator, cfg.Log),
	}

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg, availhandler.NewHealthHandler(cat, cfg.Log), api)
	serverApp.OnShutdown(dispatcher.Stop)
	if producer != nil {
		serverApp.OnShutdown(func() {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		})
	}
	serverApp.Run()
}

func initNotifications(cfg *config.Config) (*notifications.Dispatcher, *kafka.Producer) {
	dispatcher := notifications.NewDispatcher(cfg.NotifyWorkers, cfg.NotifyQueueSize, cfg.Log)
	dispatcher.RegisterSink(notifications.NewEmailSink(cfg.NotifyLatency, cfg.Log))
	dispatcher.RegisterSink(notifications.NewAdminMessageSink(cfg.NotifyLatency, cfg.Log))
	dispatcher.RegisterSink(notifications.NewDashboardSink(dashboardFeedSize, cfg.Log))

	if !cfg.KafkaEnabled {
		cfg.Log.Info("Kafka event publishing disabled")
		return dispatcher, nil
	}

	producer, err := kafka.NewProducer(kafka_config.Load(), eventsTopic, eventsDLQTopic)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	dispatcher.RegisterSink(notifications.NewKafkaSink(producer))
	cfg.Log.Info("Kafka event publishing enabled", "topic", eventsTopic)

	return dispatcher, producer
}

// apiHandler mounts several route groups behind one contracts.Handler.
type apiHandler []contracts.Handler

func (h apiHandler) RegisterRoutes(router *httprouter.Router) {
	for _, handler := range h {
		handler.RegisterRoutes(router)
	}
}
