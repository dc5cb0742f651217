package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	deliveryHttp "medibook/internal/delivery/http"
	"medibook/internal/delivery/http/handler"
	"medibook/internal/delivery/http/middleware"
	domainRepo "medibook/internal/domain/repository"
	"medibook/internal/infrastructure/cache"
	"medibook/internal/infrastructure/database"
	"medibook/internal/repository"
	"medibook/internal/store"
	"medibook/internal/usecase"
	"medibook/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Store       *store.BookingStore
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize blob store backend
	blobs, err := app.initBlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store backend: %w", err)
	}
	logrus.Infof("Store backend initialized: %s", cfg.Store.Backend)

	log := logrus.StandardLogger()

	// Initialize booking store and load persisted appointments
	bookingStore := store.NewBookingStore(blobs, log)
	if err := bookingStore.Load(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	app.Store = bookingStore
	logrus.Infof("Appointments loaded: %d", bookingStore.Count())

	// Initialize all layers
	server, err := initializeServer(cfg, bookingStore, log)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initBlobStore selects the persistence backend for the appointment blob.
func (app *App) initBlobStore(cfg *config.Config) (domainRepo.BlobStore, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		return repository.NewFileBlobStore(cfg.Store.Path)

	case config.StoreBackendRedis:
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.RedisClient = redisClient
		return repository.NewRedisBlobStore(redisClient), nil

	case config.StoreBackendPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, err
		}
		app.DB = db
		return repository.NewPostgresBlobStore(db), nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, bookingStore *store.BookingStore, log *logrus.Logger) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize doctor directory
	doctorRepo, err := repository.NewDoctorRepository()
	if err != nil {
		return nil, err
	}

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(log, bookingStore, doctorRepo)
	bookingUsecase := usecase.NewBookingUsecase(log, bookingStore, doctorRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, bookingHandler, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
