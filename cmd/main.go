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

	cancelBookingHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/cancel_booking"
	createBlockedTimeHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/create_blocked_time"
	createBookingHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/create_booking"
	createDateExceptionHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/create_date_exception"
	deleteBlockedTimeHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/delete_blocked_time"
	deleteDateExceptionHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/delete_date_exception"
	getAvailableSlotsHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/get_client_bookings"
	getDayAgendaHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/get_day_agenda"
	listScheduleHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/list_schedule"
	listServicesHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/list_services"
	rescheduleBookingHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/reschedule_booking"
	updateClientInfoHandler "github.com/jpedrosa/Mira-BookingService/internal/api/handlers/update_client_info"
	"github.com/jpedrosa/Mira-BookingService/internal/api/middleware"
	"github.com/jpedrosa/Mira-BookingService/internal/availability"
	"github.com/jpedrosa/Mira-BookingService/internal/config"
	blockRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/block"
	bookingRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/client"
	deviceRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/device"
	exceptionRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/exception"
	gcalRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/gcal"
	settingsRepo "github.com/jpedrosa/Mira-BookingService/internal/infra/storage/settings"
	gcalendarClient "github.com/jpedrosa/Mira-BookingService/internal/integrations/gcalendar"
	mailerClient "github.com/jpedrosa/Mira-BookingService/internal/integrations/mailer"
	pushClient "github.com/jpedrosa/Mira-BookingService/internal/integrations/push"
	bookingsService "github.com/jpedrosa/Mira-BookingService/internal/service/bookings"
	catalogService "github.com/jpedrosa/Mira-BookingService/internal/service/catalog"
	notifierService "github.com/jpedrosa/Mira-BookingService/internal/service/notifier"
	reminderService "github.com/jpedrosa/Mira-BookingService/internal/service/reminder"
	scheduleService "github.com/jpedrosa/Mira-BookingService/internal/service/schedule"
	cancelBookingUC "github.com/jpedrosa/Mira-BookingService/internal/usecase/cancel_booking"
	createBookingUC "github.com/jpedrosa/Mira-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/jpedrosa/Mira-BookingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/jpedrosa/Mira-BookingService/internal/usecase/reschedule_booking"
	"github.com/jpedrosa/Mira-BookingService/pkg/dbmetrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/logger"
	"github.com/jpedrosa/Mira-BookingService/pkg/metrics"
	"github.com/jpedrosa/Mira-BookingService/pkg/simpletxmanager"
	"github.com/jpedrosa/Mira-BookingService/pkg/txmanager"
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

	log.Info("Starting Mira-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс бизнеса: все расчёты слотов и окон идут в нём
	location, err := time.LoadLocation(cfg.Business.Timezone)
	if err != nil {
		log.Fatal("Failed to load business timezone %q: %v", cfg.Business.Timezone, err)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		clientRepository    *clientRepo.Repository
		catalogRepository   *catalogRepo.Repository
		settingsRepository  *settingsRepo.Repository
		blockRepository     *blockRepo.Repository
		exceptionRepository *exceptionRepo.Repository
		gcalRepository      *gcalRepo.Repository
		deviceRepository    *deviceRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		exceptionRepository = exceptionRepo.NewRepository(wrappedDB)
		gcalRepository = gcalRepo.NewRepository(wrappedDB)
		deviceRepository = deviceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		exceptionRepository = exceptionRepo.NewRepository(db)
		gcalRepository = gcalRepo.NewRepository(db)
		deviceRepository = deviceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем интеграционных клиентов
	mailer := mailerClient.NewClient(
		cfg.Mailer.URL,
		cfg.Mailer.APIKey,
		cfg.Mailer.From,
		cfg.Mailer.Enabled,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	push := pushClient.NewClient(
		cfg.Push.URL,
		cfg.Push.APIKey,
		cfg.Push.Enabled,
		time.Duration(cfg.Push.Timeout)*time.Second,
		log,
	)
	gcalendar := gcalendarClient.NewClient(
		cfg.GoogleCalendar.ClientID,
		cfg.GoogleCalendar.ClientSecret,
		cfg.GoogleCalendar.RedirectURL,
		cfg.GoogleCalendar.Enabled,
		log,
	)
	log.Info("Integration clients initialized (mailer=%v, push=%v, google_calendar=%v)",
		cfg.Mailer.Enabled, cfg.Push.Enabled, cfg.GoogleCalendar.Enabled)

	// Календарь португальских праздников
	holidays := availability.NewHolidayCalendar()

	// Инициализируем сервисы
	var notifMetrics notifierService.MetricsCollector
	if cfg.Metrics.Enabled {
		notifMetrics = metricsCollector
	}
	notifier := notifierService.NewService(
		mailer,
		push,
		gcalendar,
		gcalRepository,
		deviceRepository,
		notifMetrics,
		cfg.Mailer.AdminTo,
		location,
		log,
	)

	bookingSvc := bookingsService.NewService(bookingRepository, clientRepository, log)
	scheduleSvc := scheduleService.NewService(blockRepository, exceptionRepository, catalogRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		settingsRepository,
		bookingRepository,
		blockRepository,
		exceptionRepository,
		holidays,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		catalogRepository,
		settingsRepository,
		blockRepository,
		exceptionRepository,
		notifier,
		txMgr,
		holidays,
		location,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		settingsRepository,
		blockRepository,
		exceptionRepository,
		notifier,
		txMgr,
		holidays,
		location,
		log,
	)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		clientRepository,
		notifier,
		location,
		log,
	)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getDayAgenda := getDayAgendaHandler.NewHandler(bookingSvc, log)
	updateClientInfo := updateClientInfoHandler.NewHandler(bookingSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(scheduleSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(scheduleSvc, log)
	createDateException := createDateExceptionHandler.NewHandler(scheduleSvc, log)
	deleteDateException := deleteDateExceptionHandler.NewHandler(scheduleSvc, log)
	listSchedule := listScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	api.HandleFunc("/services/{serviceId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID или X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{phone}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-ID header)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly)

	// Агенда на день
	admin.HandleFunc("/agenda", getDayAgenda.Handle).Methods(http.MethodGet)

	// Исправление данных клиента
	admin.HandleFunc("/clients/{phone}", updateClientInfo.Handle).Methods(http.MethodPatch)

	// Блокировки времени
	admin.HandleFunc("/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-times/{blockId}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// Исключения дат
	admin.HandleFunc("/date-exceptions", createDateException.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/date-exceptions/{exceptionId}", deleteDateException.Handle).Methods(http.MethodDelete)

	// Блокировки и исключения за период
	admin.HandleFunc("/schedule", listSchedule.Handle).Methods(http.MethodGet)

	// Воркер напоминаний
	reminder := reminderService.NewService(
		bookingRepository,
		notifier,
		location,
		cfg.Reminder.HoursAhead,
		log,
	)
	if cfg.Reminder.Enabled {
		if err := reminder.Start(cfg.Reminder.CronSpec); err != nil {
			log.Fatal("Failed to start reminder worker: %v", err)
		}
	}

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

	if cfg.Reminder.Enabled {
		reminder.Stop()
	}

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
