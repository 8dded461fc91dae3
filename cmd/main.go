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

	cancelBookingHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/confirm_booking"
	getBookingHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/get_calendar"
	getPropertyHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/get_property"
	getQuoteHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/get_quote"
	listBookingsHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/list_bookings"
	listConnectionsHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/list_connections"
	listInquiriesHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/list_inquiries"
	manageBlocksHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/manage_blocks"
	requestBookingHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/request_booking"
	syncConnectionHandler "github.com/saltylife/SL-RentalService/internal/api/handlers/sync_connection"
	"github.com/saltylife/SL-RentalService/internal/api/middleware"
	"github.com/saltylife/SL-RentalService/internal/config"
	bookingRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/booking"
	calendarRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/calendar"
	inquiryRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/inquiry"
	propertyRepo "github.com/saltylife/SL-RentalService/internal/infra/storage/property"
	"github.com/saltylife/SL-RentalService/internal/integrations/icalfeed"
	bookingsService "github.com/saltylife/SL-RentalService/internal/service/bookings"
	calendarsService "github.com/saltylife/SL-RentalService/internal/service/calendars"
	checkAvailabilityUC "github.com/saltylife/SL-RentalService/internal/usecase/check_availability"
	getCalendarUC "github.com/saltylife/SL-RentalService/internal/usecase/get_calendar"
	requestBookingUC "github.com/saltylife/SL-RentalService/internal/usecase/request_booking"
	syncCalendarUC "github.com/saltylife/SL-RentalService/internal/usecase/sync_calendar"
	"github.com/saltylife/SL-RentalService/pkg/dbmetrics"
	"github.com/saltylife/SL-RentalService/pkg/logger"
	"github.com/saltylife/SL-RentalService/pkg/metrics"
	"github.com/saltylife/SL-RentalService/pkg/simpletxmanager"
	"github.com/saltylife/SL-RentalService/pkg/txmanager"
)

// realClock системное время для сервисов
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

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

	log.Info("Starting SL-RentalService...")

	if cfg.Auth.OwnerKey == "" {
		log.Fatal("auth.owner_key is required in config.toml")
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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Клиент внешних iCal-фидов
	feedClient := icalfeed.NewClient(time.Duration(cfg.Sync.TimeoutSeconds)*time.Second, log)

	// Инициализируем репозитории и транзакционный менеджер (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		propertyRepository *propertyRepo.Repository
		calendarRepository *calendarRepo.Repository
		inquiryRepository  *inquiryRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		propertyRepository = propertyRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		inquiryRepository = inquiryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		propertyRepository = propertyRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		inquiryRepository = inquiryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, realClock{}, log)
	calendarSvc := calendarsService.NewService(calendarRepository, log)

	// Инициализируем use cases
	requestBookingUseCase := requestBookingUC.NewUseCase(
		propertyRepository,
		bookingRepository,
		inquiryRepository,
		calendarRepository,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		propertyRepository,
		bookingRepository,
		calendarRepository,
		txMgr,
		log,
	)
	getCalendarUseCase := getCalendarUC.NewUseCase(
		propertyRepository,
		bookingRepository,
		calendarRepository,
		txMgr,
		log,
	)
	syncCalendarUseCase := syncCalendarUC.NewUseCase(
		propertyRepository,
		calendarRepository,
		feedClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getProperty := getPropertyHandler.NewHandler(propertyRepository, log)
	getQuote := getQuoteHandler.NewHandler(checkAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	requestBooking := requestBookingHandler.NewHandler(requestBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listInquiries := listInquiriesHandler.NewHandler(inquiryRepository, log)
	manageBlocks := manageBlocksHandler.NewHandler(calendarSvc, log)
	listConnections := listConnectionsHandler.NewHandler(calendarSvc, log)
	syncConnection := syncConnectionHandler.NewHandler(syncCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гостевые)
	// ============================================================

	// Карточка объекта
	api.HandleFunc("/property", getProperty.Handle).Methods(http.MethodGet)

	// Расчёт стоимости и проверка доступности
	api.HandleFunc("/quote", getQuote.Handle).Methods(http.MethodGet)

	// Календарь цен и занятости
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Запрос гостя: inquiry или мгновенное бронирование
	api.HandleFunc("/booking-requests", requestBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Owner-Key header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.OwnerKey))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Запросы доступности ---
	protected.HandleFunc("/inquiries", listInquiries.Handle).Methods(http.MethodGet)

	// --- Ручные блокировки дат ---
	protected.HandleFunc("/calendar/blocks", manageBlocks.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/calendar/blocks", manageBlocks.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/calendar/blocks/{date}", manageBlocks.HandleRemove).Methods(http.MethodDelete)

	// --- Внешние календари ---
	protected.HandleFunc("/connections", listConnections.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/connections/{connectionId}/sync", syncConnection.Handle).Methods(http.MethodPost)

	// Фоновая зачистка истёкших холдов
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()

	go func() {
		ticker := time.NewTicker(time.Duration(cfg.Holds.SweepIntervalSeconds) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if _, err := bookingSvc.ExpireStaleHolds(sweepCtx); err != nil {
					log.Error("Hold sweep failed: %v", err)
				}
			}
		}
	}()
	log.Info("Hold sweep started (interval=%ds)", cfg.Holds.SweepIntervalSeconds)

	// Периодическая синхронизация внешних календарей
	if cfg.Sync.Enabled {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.Sync.IntervalMinutes) * time.Minute)
			defer ticker.Stop()

			for {
				select {
				case <-sweepCtx.Done():
					return
				case <-ticker.C:
					syncCalendarUseCase.ExecuteAll(sweepCtx)
				}
			}
		}()
		log.Info("Calendar sync scheduler started (interval=%dm)", cfg.Sync.IntervalMinutes)
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	sweepCancel()

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
