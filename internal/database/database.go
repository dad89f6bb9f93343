package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/pageza/recipebook/backend/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB represents the database connection pool
type DB struct {
	*gorm.DB
	sqlDB *sql.DB
}

// Connect opens the pool for the configured database type and verifies it with a ping
func Connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("connecting to database",
		"type", cfg.DBType,
		"host", cfg.DBHost,
		"port", cfg.DBPort,
		"user", cfg.DBUser,
		"pool_size", cfg.DBConnectionLimit,
	)

	db, err := Open(dialector, cfg.DBConnectionLimit)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.HealthCheck(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	if err := prometheus.Register(collectors.NewDBStatsCollector(db.sqlDB, cfg.DBName)); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			log.Warn("failed to register database pool metrics", "error", err)
		}
	}

	log.Info("successfully connected to database")
	return db, nil
}

// Open creates a pool bounded to limit connections for the given dialector
func Open(dialector gorm.Dialector, limit int) (*DB, error) {
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database handle: %w", err)
	}

	// Acquire blocks once limit connections are checked out
	sqlDB.SetMaxOpenConns(limit)
	sqlDB.SetMaxIdleConns(limit)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &DB{DB: gormDB, sqlDB: sqlDB}, nil
}

// Dialector builds the gorm dialector for cfg.DBType
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBType {
	case "", "mysql":
		return mysql.Open(MySQLDSN(cfg)), nil
	case "postgres":
		return postgres.Open(PostgresDSN(cfg)), nil
	case "sqlite":
		name := cfg.DBName
		if name == "" {
			name = "recipebook.db"
		}
		return sqlite.Open(name), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DBType)
	}
}

// MySQLDSN formats the go-sql-driver DSN for cfg
func MySQLDSN(cfg *config.Config) string {
	dsn := mysqldriver.NewConfig()
	dsn.User = cfg.DBUser
	dsn.Passwd = cfg.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	dsn.DBName = cfg.DBName
	dsn.ParseTime = true
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}

// PostgresDSN formats the key/value DSN for cfg
func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.sqlDB.PingContext(ctx)
}

// Stats returns the pool statistics
func (db *DB) Stats() sql.DBStats {
	return db.sqlDB.Stats()
}

// Close releases every pooled connection
func (db *DB) Close() error {
	return db.sqlDB.Close()
}
