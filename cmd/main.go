package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	changeSessionContextHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/change_session_context"
	closeSessionHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/close_session"
	createReservationHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_availability"
	getOccupancyHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_occupancy"
	getSessionHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/get_session"
	openSessionHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/open_session"
	refreshOccupancyHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/refresh_occupancy"
	resetSelectionHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/reset_selection"
	streamChangesHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/stream_changes"
	toggleTableHandler "github.com/m04kA/SMC-TableBooking/internal/api/handlers/toggle_table"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/config"
	reservationRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/reservation"
	venueAPIClient "github.com/m04kA/SMC-TableBooking/internal/integrations/venueapi"
	availabilityService "github.com/m04kA/SMC-TableBooking/internal/service/availability"
	selectionService "github.com/m04kA/SMC-TableBooking/internal/service/selection"
	createReservationUC "github.com/m04kA/SMC-TableBooking/internal/usecase/create_reservation"
	refreshOccupancyUC "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
	"github.com/m04kA/SMC-TableBooking/internal/worker/refresher"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
	"github.com/m04kA/SMC-TableBooking/pkg/metrics"
)

// reservationBackend источник бронирований, который же принимает новые бронирования
type reservationBackend interface {
	refreshOccupancyUC.RecordSource
	createReservationUC.ReservationCreator
}

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to the TOML configuration file")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TableBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены). nil-коллектор безопасен для всех слоев
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем источник бронирований
	var backend reservationBackend

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		backend = reservationRepo.NewRepository(db)

	default:
		backend = venueAPIClient.NewClient(
			cfg.VenueAPI.URL,
			time.Duration(cfg.VenueAPI.Timeout)*time.Second,
			venueAPIClient.Params{
				BookingPath:    cfg.VenueAPI.BookingPath,
				EventPath:      cfg.VenueAPI.EventPath,
				DateStartParam: cfg.VenueAPI.DateStartParam,
				DateEndParam:   cfg.VenueAPI.DateEndParam,
				RepeatParam:    cfg.VenueAPI.RepeatParam,
				NotRepeatParam: cfg.VenueAPI.NotRepeatParam,
			},
			log,
		)
		log.Info("Venue API client initialized (url=%s, timeout=%ds)", cfg.VenueAPI.URL, cfg.VenueAPI.Timeout)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		availabilityService.NewStore(),
		availabilityService.NewNotifier(),
		log,
	)
	selectionSvc := selectionService.NewService(
		availabilitySvc,
		availabilitySvc,
		metricsCollector,
		cfg.Sessions.MaxSessions,
		log,
	)

	// Инициализируем use cases
	refreshOccupancyUseCase := refreshOccupancyUC.NewUseCase(
		backend,
		availabilitySvc,
		metricsCollector,
		cfg.Booking.WindowDays,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		backend,
		selectionSvc,
		availabilitySvc,
		refreshOccupancyUseCase,
		log,
	)

	// Первое обновление до старта сервера. Ошибка не фатальна: до успешного обновления все столики свободны
	refreshTimeout := time.Duration(cfg.Booking.RefreshTimeout) * time.Second
	var scheduler *refresher.Refresher
	if cfg.Booking.RefreshCron != "" {
		scheduler, err = refresher.New(cfg.Booking.RefreshCron, refreshOccupancyUseCase, refreshTimeout, log)
		if err != nil {
			log.Fatal("Failed to create refresher: %v", err)
		}
	}

	if cfg.Booking.RefreshOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		if _, err := refreshOccupancyUseCase.Execute(ctx, nil); err != nil {
			log.Warn("Initial occupancy refresh failed: %v", err)
		}
		cancel()
	}

	if scheduler != nil {
		scheduler.Start()
	}

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getOccupancy := getOccupancyHandler.NewHandler(availabilitySvc, log)
	refreshOccupancy := refreshOccupancyHandler.NewHandler(refreshOccupancyUseCase, log)
	openSession := openSessionHandler.NewHandler(selectionSvc, log)
	getSession := getSessionHandler.NewHandler(selectionSvc, log)
	changeSessionContext := changeSessionContextHandler.NewHandler(selectionSvc, log)
	toggleTable := toggleTableHandler.NewHandler(selectionSvc, log)
	resetSelection := resetSelectionHandler.NewHandler(selectionSvc, log)
	closeSession := closeSessionHandler.NewHandler(selectionSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	streamChanges := streamChangesHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Занятость столиков ---
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/occupancy", getOccupancy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/refresh", refreshOccupancy.Handle).Methods(http.MethodPost)

	// --- Сессии выбора столика ---
	api.HandleFunc("/sessions", openSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/context", changeSessionContext.Handle).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/toggle", toggleTable.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reset", resetSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/reservations", createReservation.Handle).Methods(http.MethodPost)

	// --- Поток изменений для слоя отрисовки ---
	api.HandleFunc("/changes", streamChanges.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Потоки изменений закрываются при остановке сервера
	srv.RegisterOnShutdown(streamChanges.Close)

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
