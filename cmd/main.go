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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/create_appointment"
	deleteSlotHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/generate_slots"
	getAdminAppointmentsHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/get_admin_appointments"
	getAvailableSlotsHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/get_available_slots"
	getClientAppointmentsHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/get_client_appointments"
	listSlotsHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/list_slots"
	updateAppointmentStatusHandler "github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers/update_appointment_status"
	"github.com/consultarprocessos/CP-SchedulingService/internal/api/middleware"
	"github.com/consultarprocessos/CP-SchedulingService/internal/config"
	appointmentRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/appointment"
	slotRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/slot"
	whatsappClient "github.com/consultarprocessos/CP-SchedulingService/internal/integrations/whatsapp"
	"github.com/consultarprocessos/CP-SchedulingService/internal/notifier"
	appointmentsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments"
	slotsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/slots"
	createAppointmentUC "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/create_appointment"
	generateSlotsUC "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/get_available_slots"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/dbmetrics"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/logger"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/metrics"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/simpletxmanager"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если есть) перекрывают config.toml
	_ = godotenv.Load()

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

	log.Info("Starting CP-SchedulingService...")
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

	// Инициализируем каналы уведомлений
	whatsapp := whatsappClient.NewClient(
		cfg.ZAPI.URL,
		cfg.ZAPI.ClientToken,
		time.Duration(cfg.ZAPI.Timeout)*time.Second,
		log,
	)
	mailer := notifier.NewSMTPMailer(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		log,
	)
	notify := notifier.New(whatsapp, mailer, log)
	log.Info("Notification channels initialized (whatsapp=%t, smtp=%t)",
		cfg.ZAPI.URL != "", cfg.SMTP.Host != "")

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository        *slotRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotsSvc := slotsService.NewService(slotRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(slotRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotRepository,
		appointmentRepository,
		txMgr,
		notify,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotsSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)

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

	// Доступные слоты для записи
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Агендаменты ---
	// Создание агендамента (бронирование слота)
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Отмена агендамента
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История агендаментов клиента
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// --- Управление слотами ---
	// Пакетная генерация слотов
	admin.HandleFunc("/slots/batch", generateSlots.Handle).Methods(http.MethodPost)

	// Список слотов (включая забронированные)
	admin.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Удаление свободного слота
	admin.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

	// --- Управление агендаментами ---
	// Список агендаментов с фильтрами
	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)

	// Обновление статуса агендамента
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

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
