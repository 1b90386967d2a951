package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	images_adapter "aqar-service/internal/adapters/images"
	logger_adapter "aqar-service/internal/adapters/logger"
	memory_adapter "aqar-service/internal/adapters/memory"
	postgres_adapter "aqar-service/internal/adapters/postgres"
	"aqar-service/internal/adapters/rest"
	session_adapter "aqar-service/internal/adapters/session"
	"aqar-service/internal/configs"
	"aqar-service/internal/contextkeys"
	"aqar-service/internal/core/domain"
	"aqar-service/internal/core/port"
	"aqar-service/internal/core/usecase"
	fluentlogger "aqar-service/pkg/fluent_logger"
	"aqar-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// Loggers: stdout always, Fluent Bit when enabled.
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	bootCtx := contextkeys.ContextWithLogger(context.Background(), baseLogger)

	// Storage: Postgres when DATABASE_URL is set, otherwise the seeded
	// in-memory store.
	var storage port.Storage
	var dbPool *pgxpool.Pool

	if appConfig.Database.URL != "" {
		dbPool, err = postgres.NewClient(bootCtx, postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		pgStorage, err := postgres_adapter.NewStorage(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres storage adapter: %w", err)
		}

		if err := pgStorage.EnsureSchema(bootCtx); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}

		defaultAdmin, err := domain.NewAdmin(appConfig.Admin.Username, appConfig.Admin.Email, appConfig.Admin.Password)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to prepare default admin: %w", err)
		}
		if err := pgStorage.SeedIfEmpty(bootCtx, defaultAdmin); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}

		storage = pgStorage
	} else {
		appLogger.Warn("DATABASE_URL is not set, using the in-memory store.", nil)
		memStorage := memory_adapter.NewStorage()

		// The in-memory seed covers everything except the admin account,
		// which comes from the environment.
		count, err := memStorage.CountAdmins(bootCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to check admin accounts: %w", err)
		}
		if count == 0 {
			defaultAdmin, err := domain.NewAdmin(appConfig.Admin.Username, appConfig.Admin.Email, appConfig.Admin.Password)
			if err != nil {
				return nil, fmt.Errorf("failed to prepare default admin: %w", err)
			}
			if _, err := memStorage.CreateAdmin(bootCtx, defaultAdmin); err != nil {
				return nil, fmt.Errorf("failed to create default admin: %w", err)
			}
		}

		storage = memStorage
	}
	appLogger.Info("Persistence layer initialized.", nil)

	// Sessions and image processing.
	sessions := session_adapter.NewMemoryStore(appConfig.Session.TTL)

	processor, err := images_adapter.NewProcessor(appConfig.Uploads.Dir)
	if err != nil {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil, fmt.Errorf("failed to initialize image processor: %w", err)
	}

	// Use cases.
	findPropertiesUseCase := usecase.NewFindPropertiesUseCase(storage)
	subscribeNewsletterUseCase := usecase.NewSubscribeNewsletterUseCase(storage)
	loginAdminUseCase := usecase.NewLoginAdminUseCase(storage, sessions)
	logoutAdminUseCase := usecase.NewLogoutAdminUseCase(sessions)
	processUploadUseCase := usecase.NewProcessUploadUseCase(processor)
	upsertSettingUseCase := usecase.NewUpsertSettingUseCase(storage)

	// REST API server.
	handlers := &rest.Handlers{
		Catalog: rest.NewCatalogHandler(storage, findPropertiesUseCase),
		Leads:   rest.NewLeadsHandler(storage, subscribeNewsletterUseCase),
		Auth:    rest.NewAuthHandler(storage, loginAdminUseCase, logoutAdminUseCase, appConfig.Session.TTL),
		Admin:   rest.NewAdminHandler(storage, upsertSettingUseCase),
		Upload:  rest.NewUploadHandler(processUploadUseCase, processor),
	}
	apiServer := rest.NewServer(appConfig.Rest.Port, handlers, sessions, appConfig.Uploads.Dir, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run starts the application components and manages their lifecycle.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// stdout, because fluent itself may already be down
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
