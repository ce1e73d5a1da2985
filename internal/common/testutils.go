package common

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "docker.io/postgres:16.3-alpine"
	rabbitmqImage = "rabbitmq:3.13-management-alpine"
)

// TestDB starts a throwaway Postgres container, applies the schema migrations
// and returns an open connection pool. sourceURL locates the migrations
// directory relative to the calling test, e.g. "file://../../migrations".
// The schema is dropped and the container terminated when the test finishes.
func TestDB(sourceURL string, t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()

	c, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase("bloglist_test"),
		postgres.WithUsername("bloglist"),
		postgres.WithPassword("secret"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(5*time.Second)))
	if err != nil {
		t.Fatalf("could not start postgres container: %v", err)
	}

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("could not get postgres connection string: %v", err)
	}

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		t.Fatalf("could not create migrator: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("could not run migrations: %v", err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		m.Drop()
		c.Terminate(ctx)
	})

	return db
}

// TestRabbitMQ starts a throwaway RabbitMQ container and returns its AMQP URL.
// The container is terminated when the test finishes.
func TestRabbitMQ(t *testing.T) string {
	t.Helper()

	ctx := context.Background()

	c, err := rabbitmq.Run(ctx, rabbitmqImage,
		rabbitmq.WithAdminUsername("guest"),
		rabbitmq.WithAdminPassword("guest"))
	if err != nil {
		t.Fatalf("could not start rabbitmq container: %v", err)
	}

	amqpURL, err := c.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("could not get rabbitmq connection URL: %v", err)
	}

	t.Cleanup(func() {
		if err := c.Terminate(ctx); err != nil {
			t.Fatalf("could not terminate container: %v", err)
		}
	})

	return amqpURL
}
