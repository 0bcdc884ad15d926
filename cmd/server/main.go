package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/adapters/database/pgsql"
	kafkaevents "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/adapters/events/kafka"
	portsevents "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/events"
	portssvc "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/services"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/services"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/handlers"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/middleware"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/platform/config"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/pkg/database"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Client Ledger API
// @version 1.0
// @description Credit/debit transactions against bounded-overdraft accounts, with statements.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Connection pool sized once at startup; it bounds concurrent store work.
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.DBPoolSize, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.", slog.Int("max_conns", int(cfg.DBPoolSize)))

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if cfg.RateLimitRPS > 0 {
		limiterInstance := limiter.New(memorystore.NewStore(), limiter.Rate{
			Period: time.Second,
			Limit:  cfg.RateLimitRPS,
		})
		r.Use(middleware.RateLimit(limiterInstance))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var publisher portsevents.Publisher = portsevents.NoopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := kafkaevents.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer func() {
			if cerr := kafkaPublisher.Close(); cerr != nil {
				logger.Error("Error closing Kafka publisher", slog.String("error", cerr.Error()))
			}
		}()
		publisher = kafkaPublisher
		logger.Info("Kafka event publisher enabled", slog.String("topic", cfg.KafkaTopic))
	}

	ledgerRepo := pgsql.NewPgxLedgerRepository(dbPool)
	container := &portssvc.ServiceContainer{
		Ledger:    services.NewLedgerService(ledgerRepo, publisher, logger),
		Statement: services.NewStatementService(ledgerRepo, cfg.StatementMaxRecords),
	}

	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending schema migrations over a temporary
// database/sql connection using the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
