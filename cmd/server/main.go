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

	appendBookingHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/append_booking"
	createLedgerRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/create_ledger_request"
	listLedgerHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_ledger"
	patchLedgerRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/patch_ledger_request"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/migrations"
	bookingRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/booking"
	requestRepo "github.com/m04kA/SMC-RoomBooking/internal/infra/storage/request"
	ledgerService "github.com/m04kA/SMC-RoomBooking/internal/service/ledger"
	"github.com/m04kA/SMC-RoomBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath, err := config.ParseFlags("roombooking-server", os.Args[1:])
	if err != nil {
		fmt.Printf("Failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
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

	log.Info("Starting room booking ledger server...")
	log.Info("Configuration loaded from %s", configPath)

	// Подключаемся к базе данных
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

	if err := migrations.Up(db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем репозитории (с метриками или без)
	var (
		metricsCollector  *metrics.Metrics
		requestRepository *requestRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB := dbmetrics.Wrap(db, metricsCollector, cfg.Database.DBName)
		log.Info("Metrics enabled at %s, database metrics collection started", cfg.Metrics.Path)

		requestRepository = requestRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
	} else {
		requestRepository = requestRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
	}
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	ledgerSvc := ledgerService.NewService(requestRepository, bookingRepository, txMgr, log)

	// Инициализируем handlers
	listLedger := listLedgerHandler.NewHandler(ledgerSvc, log)
	createLedgerRequest := createLedgerRequestHandler.NewHandler(ledgerSvc, log)
	patchLedgerRequest := patchLedgerRequestHandler.NewHandler(ledgerSvc, log)
	appendBooking := appendBookingHandler.NewHandler(ledgerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/requests", listLedger.Handle).Methods(http.MethodGet)
	api.HandleFunc("/requests", createLedgerRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/requests/{requestId}", patchLedgerRequest.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings", appendBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
