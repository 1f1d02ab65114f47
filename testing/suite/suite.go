package suite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	redisPort  = "6379/tcp"
	redisImage = "redis"
	redisTag   = "alpine"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Redis  *redis.Client
	SQLite *storage.Storage
}

// New starts a throwaway redis container and opens a temp sqlite archive.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, st := NewSQLite(t)
	st.Redis = startRedis(ctx, t)

	return ctx, st
}

// NewSQLite prepares only the sqlite archive, for tests that do not need docker.
func NewSQLite(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	sqliteStorage, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "connectfour.db"))
	if err != nil {
		t.Fatalf("could not open sqlite: %v", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		t.Fatalf("could not init sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = sqliteStorage.Close()
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		SQLite: sqliteStorage,
	}
}

func startRedis(ctx context.Context, t *testing.T) *redis.Client {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag,
		Env:        []string{},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration)

	redisHost := resource.GetHostPort(redisPort)

	// the container may not accept connections yet
	pool.MaxWait = maxWaitDuration

	var redisClient *redis.Client
	if err = pool.Retry(func() error {
		redisClient = redis.NewClient(&redis.Options{
			Addr: redisHost,
		})
		return redisClient.Ping(ctx).Err()
	}); err != nil {
		t.Fatalf("could not connect to redis: %v", connectFailure(err, func() error {
			return pool.Purge(resource)
		}))
	}

	if err = redisClient.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("could not flush database: %v", err)
	}

	t.Cleanup(func() {
		_ = redisClient.Close()

		if err := pool.Purge(resource); err != nil {
			t.Errorf("could not purge resource: %v", err)
		}
	})

	return redisClient
}

// connectFailure purges the container and keeps connErr as the reported cause.
func connectFailure(connErr error, purge func() error) error {
	if purgeErr := purge(); purgeErr != nil {
		return errors.Join(connErr, fmt.Errorf("could not purge resource: %w", purgeErr))
	}

	return connErr
}
