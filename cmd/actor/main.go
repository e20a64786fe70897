package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkConflictHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/check_conflict"
	editRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/edit_request"
	getAvailabilityHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_calendar"
	getDayBookingsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_day_bookings"
	getRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_request"
	getRequestStatsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_request_stats"
	getResourcesHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/get_resources"
	listRequestsHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/list_requests"
	refreshSyncHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/refresh_sync"
	resolveRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/resolve_request"
	submitRequestHandler "github.com/m04kA/SMC-RoomBooking/internal/api/handlers/submit_request"
	"github.com/m04kA/SMC-RoomBooking/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBooking/internal/config"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/snapshot"
	"github.com/m04kA/SMC-RoomBooking/internal/infra/storage/localcache"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/ledgerapi"
	"github.com/m04kA/SMC-RoomBooking/internal/ledger"
	availabilityService "github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	catalogService "github.com/m04kA/SMC-RoomBooking/internal/service/catalog"
	requestsService "github.com/m04kA/SMC-RoomBooking/internal/service/requests"
	"github.com/m04kA/SMC-RoomBooking/internal/syncer"
	submitRequestUC "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_request"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	configPath, err := config.ParseFlags("roombooking-actor", os.Args[1:])
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

	log.Info("Starting room booking actor (role=%s)...", cfg.Actor.Role)
	log.Info("Configuration loaded from %s", configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	window, err := cfg.DayWindow()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}

	// Источники данных: удаленный реестр, локальная копия, статический снимок
	snapshotReader := snapshot.NewReader(cfg.Snapshot.Dir)

	var remote syncer.RemoteLedger
	if cfg.Remote.URL != "" {
		remote = ledgerapi.NewClient(cfg.Remote.URL, cfg.RemoteTimeout(), log)
		log.Info("Remote ledger client initialized (url=%s, timeout=%ds)", cfg.Remote.URL, cfg.Remote.Timeout)
	} else {
		log.Warn("Remote ledger URL is not set, running on local cache and snapshot only")
	}

	var local syncer.LocalStore
	if err := os.MkdirAll(filepath.Dir(cfg.LocalCache.Path), 0o755); err != nil {
		log.Warn("Local cache directory unavailable: %v", err)
	} else if cache, err := localcache.Open(ctx, cfg.LocalCache.Path); err != nil {
		log.Warn("Local cache unavailable, continuing without it: %v", err)
	} else {
		defer cache.Close()
		local = cache
		log.Info("Local cache opened at %s", cfg.LocalCache.Path)
	}

	// Справочник ресурсов
	catalog := catalogService.Load(ctx, snapshotReader, cfg.Resources, log)

	// Кэш реестра и синхронизация
	store := ledger.NewStore()

	var syncMetrics syncer.Metrics
	if metricsCollector != nil {
		syncMetrics = metricsCollector
	}
	syncLayer := syncer.NewSyncer(remote, local, snapshotReader, store, syncMetrics, syncer.Config{
		PollInterval: cfg.PollInterval(),
		CallTimeout:  cfg.RemoteTimeout(),
	}, log)

	if tier, err := syncLayer.Refresh(ctx); err != nil {
		if !errors.Is(err, domain.ErrDataUnavailable) {
			log.Fatal("Initial refresh failed: %v", err)
		}
		log.Warn("No data source answered at startup, reads return 503 until one does")
	} else {
		log.Info("Ledger loaded from tier=%s", tier)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(store, catalog, window, log)
	requestsSvc := requestsService.NewService(syncLayer, store, catalog, log)

	// Инициализируем use cases
	submitRequestUseCase := submitRequestUC.NewUseCase(syncLayer, availabilitySvc, catalog, window, log)

	// Инициализируем handlers
	getResources := getResourcesHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	getCalendar := getCalendarHandler.NewHandler(availabilitySvc, log)
	checkConflict := checkConflictHandler.NewHandler(availabilitySvc, log)
	submitRequest := submitRequestHandler.NewHandler(submitRequestUseCase, log)
	refreshSync := refreshSyncHandler.NewHandler(syncLayer, log)
	listRequests := listRequestsHandler.NewHandler(requestsSvc, log)
	getRequest := getRequestHandler.NewHandler(requestsSvc, log)
	getRequestStats := getRequestStatsHandler.NewHandler(requestsSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(requestsSvc, log)
	acceptRequest := resolveRequestHandler.NewHandler(requestsSvc, resolveRequestHandler.ActionAccept, log)
	rejectRequest := resolveRequestHandler.NewHandler(requestsSvc, resolveRequestHandler.ActionReject, log)
	editRequest := editRequestHandler.NewHandler(requestsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// SYNC (работает и без загруженных данных)
	// ============================================================

	api.HandleFunc("/sync/refresh", refreshSync.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/sync/status", refreshSync.Status).Methods(http.MethodGet)
	api.HandleFunc("/resources", getResources.Handle).Methods(http.MethodGet)

	// ============================================================
	// USER ROUTES (требуют загруженного реестра)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.RequireLoaded(store.Loaded))

	public.HandleFunc("/resources/{resourceId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/resources/{resourceId}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	public.HandleFunc("/resources/{resourceId}/conflicts", checkConflict.Handle).Methods(http.MethodGet)
	public.HandleFunc("/requests", submitRequest.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key и роль admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminOnly(cfg.Actor.IsAdmin(), cfg.Actor.AdminKey))
	admin.Use(middleware.RequireLoaded(store.Loaded))

	admin.HandleFunc("/requests", listRequests.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/requests/stats", getRequestStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{requestId}", getRequest.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/requests/{requestId}", editRequest.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/requests/{requestId}/accept", acceptRequest.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/requests/{requestId}/reject", rejectRequest.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Периодический опрос удаленного реестра
	go func() {
		if err := syncLayer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Sync loop stopped: %v", err)
		}
	}()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting actor on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()

	log.Info("Shutting down actor...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if status := syncLayer.Status(); status.Unmirrored > 0 {
		log.Warn("%d local changes were not mirrored to the remote ledger; they stay in the local cache", status.Unmirrored)
	}

	log.Info("Actor stopped gracefully")
}
