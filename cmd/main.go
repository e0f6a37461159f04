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

	createBookingHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/create_booking"
	getQuoteHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/get_quote"
	getSelectionHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/get_selection"
	getVenueCalendarHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/get_venue_calendar"
	listSubmissionsHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/list_submissions"
	pickDateHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/pick_date"
	resetSelectionHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/reset_selection"
	startSelectionHandler "github.com/m04kA/SMC-HolidazeGateway/internal/api/handlers/start_selection"
	"github.com/m04kA/SMC-HolidazeGateway/internal/api/middleware"
	"github.com/m04kA/SMC-HolidazeGateway/internal/config"
	"github.com/m04kA/SMC-HolidazeGateway/internal/domain"
	selectionStorage "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/selection"
	submissionRepo "github.com/m04kA/SMC-HolidazeGateway/internal/infra/storage/submission"
	holidazeClient "github.com/m04kA/SMC-HolidazeGateway/internal/integrations/holidaze"
	selectionsService "github.com/m04kA/SMC-HolidazeGateway/internal/service/selections"
	submissionsService "github.com/m04kA/SMC-HolidazeGateway/internal/service/submissions"
	createBookingUC "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/create_booking"
	getQuoteUC "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_quote"
	getVenueCalendarUC "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/get_venue_calendar"
	pickDateUC "github.com/m04kA/SMC-HolidazeGateway/internal/usecase/pick_date"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/logger"
	"github.com/m04kA/SMC-HolidazeGateway/pkg/metrics"
)

// appMetrics метрики, которые нужны use case'ам и middleware
type appMetrics interface {
	IncSubmission(outcome string)
	IncValidationFailure(reason string)
	IncSelectionPick(result string)
	ObserveRemoteCall(operation string, status string, duration time.Duration)
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// sessionStore хранилище сессий выбора дат вместе с защитой от повторной отправки
type sessionStore interface {
	Create(ctx context.Context, session *domain.SelectionSession) error
	Get(ctx context.Context, id string) (*domain.SelectionSession, error)
	Save(ctx context.Context, session *domain.SelectionSession) error
	AcquireInFlight(ctx context.Context, key string, ttl time.Duration) (string, bool, error)
	ReleaseInFlight(ctx context.Context, key, token string) error
}

// submissionJournal журнал заявок (PostgreSQL или заглушка)
type submissionJournal interface {
	Create(ctx context.Context, submission *domain.Submission) (*domain.Submission, error)
	Finish(ctx context.Context, id int64, status domain.SubmissionStatus, remoteBookingID, message *string) error
	GetByCustomer(ctx context.Context, filter domain.SubmissionsFilter) ([]*domain.Submission, error)
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
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

	log.Info("Starting SMC-HolidazeGateway...")
	log.Info("Configuration loaded from %s", configPath)

	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone %s: %v", cfg.Calendar.Timezone, err)
	}
	log.Info("Calendar timezone: %s", location)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		appMetricsImpl   appMetrics = metrics.Nop{}
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		appMetricsImpl = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx := context.Background()

	// Хранилище сессий выбора дат: Redis или память процесса
	selectionTTL := time.Duration(cfg.Selection.TTL) * time.Second
	var store sessionStore
	if cfg.Redis.Enabled {
		rdb, err := selectionStorage.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.PoolSize)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()

		store = selectionStorage.NewRedisStore(rdb, selectionTTL, location)
		log.Info("Selection store: redis (pool_size=%d, ttl=%ds)", cfg.Redis.PoolSize, cfg.Selection.TTL)
	} else {
		store = selectionStorage.NewMemoryStore(selectionTTL, location)
		log.Warn("Selection store: in-memory (redis disabled); sessions are lost on restart")
	}

	// Журнал заявок: PostgreSQL или заглушка
	var journal submissionJournal = submissionRepo.NopRepository{}
	if cfg.Database.Enabled {
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
		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		journal = submissionRepo.NewRepository(db)
	} else {
		log.Warn("Submission journal disabled (database.enabled=false)")
	}

	// Инициализируем клиента Holidaze API
	holidaze := holidazeClient.NewClient(
		cfg.Holidaze.URL,
		cfg.Holidaze.APIKey,
		time.Duration(cfg.Holidaze.Timeout)*time.Second,
		location,
		appMetricsImpl,
		log,
	)
	log.Info("Holidaze client initialized (url=%s, timeout=%ds, api_key_set=%t)",
		cfg.Holidaze.URL, cfg.Holidaze.Timeout, cfg.Holidaze.APIKey != "")

	// Инициализируем сервисы
	selectionSvc := selectionsService.NewService(store, holidaze, log)
	submissionSvc := submissionsService.NewService(journal, log)

	// Инициализируем use cases
	getVenueCalendarUseCase := getVenueCalendarUC.NewUseCase(holidaze, store, location, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(holidaze, location, log)
	pickDateUseCase := pickDateUC.NewUseCase(store, holidaze, appMetricsImpl, location, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		holidaze,
		holidaze,
		store,
		store,
		journal,
		appMetricsImpl,
		location,
		time.Duration(cfg.Selection.InFlightTTL)*time.Second,
		log,
	)

	// Инициализируем handlers
	getVenueCalendar := getVenueCalendarHandler.NewHandler(getVenueCalendarUseCase, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	startSelection := startSelectionHandler.NewHandler(selectionSvc, log)
	getSelection := getSelectionHandler.NewHandler(selectionSvc, log)
	resetSelection := resetSelectionHandler.NewHandler(selectionSvc, log)
	pickDate := pickDateHandler.NewHandler(pickDateUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listSubmissions := listSubmissionsHandler.NewHandler(submissionSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log.Structured()))
	r.Use(middleware.AccessLog(log.Structured()))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь площадки на месяц
	api.HandleFunc("/venues/{venueId}/calendar", getVenueCalendar.Handle).Methods(http.MethodGet)

	// Расчет стоимости и проверка интервала
	api.HandleFunc("/venues/{venueId}/quote", getQuote.Handle).Methods(http.MethodGet)

	// --- Сессии выбора дат ---
	api.HandleFunc("/venues/{venueId}/selections", startSelection.Handle).Methods(http.MethodPost)
	api.HandleFunc("/selections/{selectionId}", getSelection.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selections/{selectionId}", resetSelection.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/selections/{selectionId}/picks", pickDate.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен Holidaze API)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Отправка заявки на бронирование
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// История заявок пользователя: токен дополнительно подтверждается профилем в Holidaze API
	verified := protected.PathPrefix("").Subrouter()
	verified.Use(middleware.VerifyCustomer(holidaze, log.Structured()))
	verified.HandleFunc("/submissions", listSubmissions.Handle).Methods(http.MethodGet)

	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORS.AllowedOrigins)(r)
		log.Info("CORS enabled for origins: %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
