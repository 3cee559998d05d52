// Package database handles the connection to the Postgres database.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"plantify/internal/config"
	"plantify/internal/middleware"
	"plantify/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database handle.
var DB *gorm.DB

// CustomGormLogger routes GORM log output through the structured logger.
type CustomGormLogger struct {
	SlowThreshold time.Duration
	LogLevel      logger.LogLevel
}

func (l *CustomGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.LogLevel = level
	return &newLogger
}

func (l *CustomGormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= logger.Info {
		middleware.Logger.InfoContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= logger.Warn {
		middleware.Logger.WarnContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.LogLevel >= logger.Error {
		middleware.Logger.ErrorContext(ctx, fmt.Sprintf(msg, data...))
	}
}

func (l *CustomGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && err != gorm.ErrRecordNotFound && l.LogLevel >= logger.Error:
		middleware.Logger.ErrorContext(ctx, "Database query failed",
			slog.String("error", err.Error()),
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= logger.Warn:
		middleware.Logger.WarnContext(ctx, "Slow database query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.SlowThreshold),
		)
	case l.LogLevel >= logger.Info:
		middleware.Logger.DebugContext(ctx, "Database query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}

// Connect opens the database connection, configures the pool, and runs
// automatic migrations outside of production.
func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	gormLogger := &CustomGormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      logger.Warn,
	}
	if cfg.Env == "development" {
		gormLogger.LogLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	DB = db

	if cfg.Env != "production" {
		if err := AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	middleware.Logger.Info("Database connected",
		slog.String("host", cfg.DBHost),
		slog.String("database", cfg.DBName),
	)
	return nil
}

// AutoMigrate creates or updates the schema for all application models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}
