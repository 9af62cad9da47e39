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

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createPublicBookingHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_public_booking"
	createScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_schedule"
	createServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_service"
	deleteScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_schedule"
	deleteServiceHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_service"
	getCompanyPageHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_company_page"
	getHistoryHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_history"
	getMyCompanyHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_my_company"
	listCompaniesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_companies"
	listSchedulesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_schedules"
	listServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/list_services"
	loginHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/register"
	updateCompanyHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_company"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	companyRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/company"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	"github.com/m04kA/SMC-AppointmentService/internal/notify"
	authService "github.com/m04kA/SMC-AppointmentService/internal/service/auth"
	companiesService "github.com/m04kA/SMC-AppointmentService/internal/service/companies"
	schedulesService "github.com/m04kA/SMC-AppointmentService/internal/service/schedules"
	servicesService "github.com/m04kA/SMC-AppointmentService/internal/service/services"
	createScheduleUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_schedule"
	publicBookingUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/public_booking"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/jwtauth"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
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

	// Инициализируем подписанта токенов
	signer := jwtauth.NewSigner(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	// Инициализируем отправку писем
	var sender notify.Sender
	switch cfg.Mailer.Provider {
	case "resend":
		sender = mailer.NewResendSender(cfg.Mailer.APIKey, cfg.Mailer.From, log)
		log.Info("Mailer initialized (provider=resend, from=%s)", cfg.Mailer.From)
	default:
		sender = mailer.NewNoopSender(log)
		log.Info("Mailer initialized (provider=noop, emails will be logged only)")
	}
	notifier := notify.NewNotifier(sender, time.Duration(cfg.Mailer.Timeout)*time.Second, log)

	// Инициализируем репозитории (с метриками или без)
	var (
		companyRepository  *companyRepo.Repository
		userRepository     *userRepo.Repository
		serviceRepository  *serviceRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		companyRepository = companyRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		companyRepository = companyRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	authSvc := authService.NewService(companyRepository, userRepository, signer, txMgr, log)
	companiesSvc := companiesService.NewService(companyRepository, serviceRepository, log)
	servicesSvc := servicesService.NewService(serviceRepository, log)
	schedulesSvc := schedulesService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	createScheduleUseCase := createScheduleUC.NewUseCase(scheduleRepository, serviceRepository, txMgr, log)
	publicBookingUseCase := publicBookingUC.NewUseCase(
		companyRepository,
		createScheduleUseCase,
		serviceRepository,
		notifier,
		log,
	)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getMyCompany := getMyCompanyHandler.NewHandler(companiesSvc, log)
	updateCompany := updateCompanyHandler.NewHandler(companiesSvc, log)
	listServices := listServicesHandler.NewHandler(servicesSvc, log)
	createService := createServiceHandler.NewHandler(servicesSvc, log)
	deleteService := deleteServiceHandler.NewHandler(servicesSvc, log)
	listSchedules := listSchedulesHandler.NewHandler(schedulesSvc, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	getHistory := getHistoryHandler.NewHandler(schedulesSvc, log)
	listCompanies := listCompaniesHandler.NewHandler(companiesSvc, log)
	getCompanyPage := getCompanyPageHandler.NewHandler(companiesSvc, log)
	createPublicBooking := createPublicBookingHandler.NewHandler(publicBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// Регистрация и вход
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Публичный каталог и страницы компаний
	api.HandleFunc("/public/companies", listCompanies.Handle).Methods(http.MethodGet)
	api.HandleFunc("/public/book", createPublicBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/public/{slug}", getCompanyPage.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(signer))

	// --- Профиль компании ---
	protected.HandleFunc("/companies/me", getMyCompany.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/companies/me", updateCompany.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	protected.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Записи ---
	protected.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules", createSchedule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedules/history", getHistory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// CORS для браузерных клиентов (публичная страница записи)
	corsHandler := ghandlers.CORS(
		ghandlers.AllowedOrigins([]string{"*"}),
		ghandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
