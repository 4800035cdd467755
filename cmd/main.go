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

	cancelAppointmentHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_available_slots"
	getBookingPolicyHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_booking_policy"
	getClientAppointmentsHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_client_appointments"
	getProfessionalAppointmentsHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_professional_appointments"
	getScheduleHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/get_schedule"
	rescheduleAppointmentHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/reschedule_appointment"
	updateBookingPolicyHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/update_booking_policy"
	updateScheduleHandler "github.com/elietedasilvas/BLZ-BookingService/internal/api/handlers/update_schedule"
	"github.com/elietedasilvas/BLZ-BookingService/internal/api/middleware"
	"github.com/elietedasilvas/BLZ-BookingService/internal/config"
	appointmentRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/appointment"
	policyRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/policy"
	scheduleRepo "github.com/elietedasilvas/BLZ-BookingService/internal/infra/storage/schedule"
	catalogServiceClient "github.com/elietedasilvas/BLZ-BookingService/internal/integrations/catalogservice"
	appointmentsService "github.com/elietedasilvas/BLZ-BookingService/internal/service/appointments"
	maintenanceService "github.com/elietedasilvas/BLZ-BookingService/internal/service/maintenance"
	policyService "github.com/elietedasilvas/BLZ-BookingService/internal/service/policy"
	scheduleService "github.com/elietedasilvas/BLZ-BookingService/internal/service/schedule"
	createAppointmentUC "github.com/elietedasilvas/BLZ-BookingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/elietedasilvas/BLZ-BookingService/internal/usecase/get_available_slots"
	rescheduleAppointmentUC "github.com/elietedasilvas/BLZ-BookingService/internal/usecase/reschedule_appointment"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/dbmetrics"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/logger"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/metrics"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/simpletxmanager"
	"github.com/elietedasilvas/BLZ-BookingService/pkg/txmanager"
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

	log.Info("Starting BLZ-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент каталога
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		policyRepository      *policyRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		policyRepository = policyRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		policyRepository = policyRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, catalogClient, txMgr, log)
	policySvc := policyService.NewService(policyRepository, catalogClient, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		policyRepository,
		catalogClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		policyRepository,
		catalogClient,
		log,
	)

	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		policyRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	getBookingPolicy := getBookingPolicyHandler.NewHandler(policySvc, log)
	updateBookingPolicy := updateBookingPolicyHandler.NewHandler(policySvc, log)

	// Фоновая задача завершения прошедших записей
	maintenanceSvc := maintenanceService.NewService(appointmentRepository, log)
	if err := maintenanceSvc.Start(cfg.Jobs.CompleteFinishedSchedule); err != nil {
		log.Fatal("Failed to start maintenance jobs: %v", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные слоты мастера
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание мастера
	api.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Действующая политика бронирования мастера
	api.HandleFunc("/professionals/{professionalId}/booking-policy",
		getBookingPolicy.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Подтверждение записи мастером
	protected.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)

	// Перенос записи
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Кабинет мастера ---
	// Записи мастера
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// Замена расписания одного дня недели
	protected.HandleFunc("/professionals/{professionalId}/schedule/{dayOfWeek}",
		updateSchedule.Handle).Methods(http.MethodPut)

	// Политика бронирования (персональная или общесалонная)
	protected.HandleFunc("/booking-policies", updateBookingPolicy.Handle).Methods(http.MethodPut)

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

	// Останавливаем фоновые задачи
	maintenanceSvc.Stop()

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
