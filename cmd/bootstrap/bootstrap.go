package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sehat-clinic/config"
	deliveryHttp "sehat-clinic/internal/delivery/http"
	"sehat-clinic/internal/delivery/http/handler"
	"sehat-clinic/internal/delivery/http/middleware"
	"sehat-clinic/internal/infrastructure/ai"
	"sehat-clinic/internal/infrastructure/cache"
	"sehat-clinic/internal/infrastructure/database"
	"sehat-clinic/internal/infrastructure/metrics"
	"sehat-clinic/internal/repository"
	"sehat-clinic/internal/service"
	"sehat-clinic/internal/usecase"
	"sehat-clinic/pkg/jwt"
	"sehat-clinic/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Assistant   *ai.GeminiClient
	Dispatcher  *service.ReminderDispatcher
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	cfg, db, err := Open()
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	assistant, err := ai.NewGeminiClient(context.Background(), cfg.Gemini)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to create AI assistant client: %w", err)
	}
	if assistant == nil {
		logrus.Warn("GEMINI_API_KEY is not set, chat endpoint will report unavailable")
	}
	app.Assistant = assistant

	app.initialize()
	return app, nil
}

// Open loads configuration and connects to the database. The migrate and
// seed commands need nothing more.
func Open() (*config.Config, *gorm.DB, error) {
	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logrus.Info("Database connected successfully")

	return cfg, db, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initialize wires repositories, usecases, handlers and the reminder dispatcher
func (app *App) initialize() {
	cfg := app.Config
	db := app.DB
	log := logrus.StandardLogger()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	audit := service.NewAuditService(log)

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	reminderRepo := repository.NewReminderRepository()

	// A nil *GeminiClient must not become a non-nil interface value.
	var assistant usecase.AssistantClient
	if app.Assistant != nil {
		assistant = app.Assistant
	}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, patientRepo, jwtService, app.RedisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, prescriptionRepo, audit)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, audit)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, audit)
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, reminderRepo, audit)
	reminderUsecase := usecase.NewReminderUsecase(db, log, reminderRepo)
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, patientRepo, appointmentRepo, prescriptionRepo)
	chatUsecase := usecase.NewChatUsecase(log, assistant, cfg.Gemini.Timeout, appMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterConfig{
		Log:                 log,
		RequestTimeout:      cfg.App.RequestTimeout,
		PatientHandler:      handler.NewPatientHandler(patientUsecase, customValidator),
		DoctorHandler:       handler.NewDoctorHandler(doctorUsecase, customValidator),
		AppointmentHandler:  handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		PrescriptionHandler: handler.NewPrescriptionHandler(prescriptionUsecase, customValidator),
		ReminderHandler:     handler.NewReminderHandler(reminderUsecase, customValidator),
		AuthHandler:         handler.NewAuthHandler(authUsecase, customValidator),
		DashboardHandler:    handler.NewDashboardHandler(dashboardUsecase),
		ChatHandler:         handler.NewChatHandler(chatUsecase),
		MetricsHandler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		AuthMiddleware:      middleware.NewAuthMiddleware(jwtService, app.RedisClient),
		CORSMiddleware:      middleware.NewCORSMiddleware(cfg.App.AllowedOrigins),
		LoggingMiddleware:   middleware.NewLoggingMiddleware(log, appMetrics),
	})

	app.Dispatcher = service.NewReminderDispatcher(db, app.RedisClient, log, reminderRepo, appMetrics, cfg.Reminder)
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and the reminder dispatcher and handles graceful shutdown
func (app *App) Run() {
	app.Dispatcher.Start()

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the dispatcher and releases connections, in that order
func (app *App) Close() {
	if app.Dispatcher != nil {
		app.Dispatcher.Stop()
	}

	if app.Assistant != nil {
		if err := app.Assistant.Close(); err != nil {
			logrus.Warnf("Failed to close AI assistant client: %v", err)
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}
