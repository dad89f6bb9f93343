package testhelpers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/sqlite"
)

const (
	testDBUser     = "recipes"
	testDBPassword = "recipespass"
	testDBName     = "recipebook"
)

// DiscardLogger returns a logger that drops every record
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupSQLiteDB creates a migrated in-memory SQLite database private to the test.
// The pool holds a single connection so the in-memory database is shared.
func SetupSQLiteDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), 1)
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Migrate(context.Background(), db, DiscardLogger()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SetupMySQLDB starts a MySQL container and returns a migrated connection to it.
func SetupMySQLDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := &config.Config{
		DBType:            "mysql",
		DBUser:            testDBUser,
		DBPassword:        testDBPassword,
		DBName:            testDBName,
		DBConnectionLimit: 4,
	}

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8.0",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": testDBPassword,
			"MYSQL_USER":          testDBUser,
			"MYSQL_PASSWORD":      testDBPassword,
			"MYSQL_DATABASE":      testDBName,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("3306/tcp"),
			wait.ForLog("port: 3306  MySQL Community Server"),
		).WithStartupTimeout(120 * time.Second),
	}

	return setupContainerDB(t, cfg, req, "3306")
}

// SetupPostgresDB starts a PostgreSQL container and returns a migrated connection to it.
func SetupPostgresDB(t *testing.T) *database.DB {
	t.Helper()

	cfg := &config.Config{
		DBType:            "postgres",
		DBUser:            testDBUser,
		DBPassword:        testDBPassword,
		DBName:            testDBName,
		DBConnectionLimit: 4,
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     cfg.DBUser,
			"POSTGRES_PASSWORD": cfg.DBPassword,
			"POSTGRES_DB":       cfg.DBName,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
			wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
					cfg.DBUser, cfg.DBPassword, host, port.Port(), cfg.DBName)
			}),
		).WithStartupTimeout(60 * time.Second),
	}

	return setupContainerDB(t, cfg, req, "5432")
}

func setupContainerDB(t *testing.T, cfg *config.Config, req testcontainers.ContainerRequest, port string) *database.DB {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, nat.Port(port+"/tcp"))
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}
	cfg.DBHost = host
	cfg.DBPort = mappedPort.Port()

	t.Logf("connecting to %s test database at %s:%s", cfg.DBType, cfg.DBHost, cfg.DBPort)

	db, err := database.Connect(ctx, cfg, DiscardLogger())
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := database.Migrate(ctx, db, DiscardLogger()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}
