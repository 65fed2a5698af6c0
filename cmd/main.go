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

	adminLoginHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/admin_login"
	adminLogoutHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/admin_logout"
	cancelAppointmentHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/get_availability"
	getCatalogHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/get_catalog"
	listAppointmentsHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/list_appointments"
	toggleBlockHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/toggle_block"
	watchAvailabilityHandler "github.com/m04kA/JMN-BookingService/internal/api/handlers/watch_availability"
	"github.com/m04kA/JMN-BookingService/internal/api/middleware"
	"github.com/m04kA/JMN-BookingService/internal/config"
	"github.com/m04kA/JMN-BookingService/internal/infra/feed"
	appointmentRepo "github.com/m04kA/JMN-BookingService/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/JMN-BookingService/internal/infra/storage/block"
	appointmentsService "github.com/m04kA/JMN-BookingService/internal/service/appointments"
	authService "github.com/m04kA/JMN-BookingService/internal/service/auth"
	availabilityService "github.com/m04kA/JMN-BookingService/internal/service/availability"
	"github.com/m04kA/JMN-BookingService/internal/store"
	createAppointmentUC "github.com/m04kA/JMN-BookingService/internal/usecase/create_appointment"
	toggleBlockUC "github.com/m04kA/JMN-BookingService/internal/usecase/toggle_block"
	"github.com/m04kA/JMN-BookingService/pkg/dbmetrics"
	"github.com/m04kA/JMN-BookingService/pkg/logger"
	"github.com/m04kA/JMN-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting JMN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Загружаем каталог услуг студии
	catalog, err := config.LoadCatalog(cfg.Booking.CatalogFile)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s (%d services, %d add-ons, %d slots)",
		cfg.Booking.CatalogFile, len(catalog.Services), len(catalog.AddOns), len(catalog.Slots))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		blockRepository       *blockRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Хранилище коллекций с push-рассылкой снимков
	st := store.New(appointmentRepository, blockRepository, log)
	if err := st.Start(ctx); err != nil {
		log.Fatal("Failed to load initial snapshots: %v", err)
	}
	log.Info("Initial collection snapshots loaded")

	// LISTEN/NOTIFY: изменения из других процессов подтягиваются в снимки
	listener, err := feed.NewListener(
		cfg.Database.DSN(),
		[]string{store.ChannelAppointments, store.ChannelBlocks},
		func(channel string) { st.HandleNotification(ctx, channel) },
		log,
	)
	if err != nil {
		log.Fatal("Failed to start database listener: %v", err)
	}
	defer listener.Close()

	// Резолвер доступности подписан на оба снимка
	resolver := availabilityService.NewResolver(catalog.Slots, log)

	apptCh, releaseAppts := st.SubscribeAppointments()
	blockCh, releaseBlocks := st.SubscribeBlocks()
	defer releaseAppts()
	defer releaseBlocks()

	go resolver.Run(ctx, apptCh, blockCh)
	log.Info("Availability resolver started")

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(st, log)

	authSvc, err := authService.New(
		cfg.Auth.AdminPasswordHash,
		time.Duration(cfg.Auth.SessionTTLMinutes)*time.Minute,
		&authService.RealTimeProvider{},
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize auth service: %v", err)
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(catalog, st, log)
	toggleBlockUseCase := toggleBlockUC.NewUseCase(catalog, st, log)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(resolver, log)
	watchAvailability := watchAvailabilityHandler.NewHandler(resolver, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	adminLogout := adminLogoutHandler.NewHandler(authSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	toggleBlock := toggleBlockHandler.NewHandler(toggleBlockUseCase, log)

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

	// ============================================================
	// PUBLIC ROUTES (клиентская запись, без аутентификации)
	// ============================================================

	// Каталог услуг, добавок и слотов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Снимок доступности окна записи
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Поток снимков доступности (SSE)
	api.HandleFunc("/availability/stream", watchAvailability.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Вход оператора
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию оператора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(authSvc))

	// --- Записи клиентов ---
	// Список всех записей
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Управление расписанием ---
	// Переключение блокировки дня или слота
	protected.HandleFunc("/admin/schedule/{date}", toggleBlock.Handle).Methods(http.MethodPatch)

	// Выход оператора
	protected.HandleFunc("/admin/logout", adminLogout.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
