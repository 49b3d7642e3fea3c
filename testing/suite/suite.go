package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
)

const (
	containerTTL = 120
	startTimeout = 120 * time.Second
)

const (
	redisPort = "6379/tcp"

	redisImage = "redis"
	// SUITE_REDIS_TAG overrides the image tag, e.g. to match the production server.
	redisTagEnv     = "SUITE_REDIS_TAG"
	defaultRedisTag = "alpine"
)

// Suite gives a test its own Redis, reached through the same storage constructor the app uses.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Addr    string
	Storage *redis.Client
}

// New starts a Redis container for the test and removes it on cleanup.
// The test is skipped in short mode since it needs docker.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis suite in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})).
		With("component", "suite", "test", t.Name())

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}
	pool.MaxWait = startTimeout

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: redisImage,
		Tag:        redisTag(),
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis container: %v", err)
	}

	_ = resource.Expire(containerTTL)

	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			t.Errorf("could not purge redis container: %v", purgeErr)
		}
	})

	addr := resource.GetHostPort(redisPort)

	var client *redis.Client
	if err = pool.Retry(func() error {
		var connErr error
		client, connErr = storage.NewRedis(ctx, addr)

		return connErr
	}); err != nil {
		t.Fatalf("redis at %s never became ready: %v", addr, err)
	}

	t.Cleanup(func() {
		_ = client.Close()
	})

	logger.Info("redis ready", "addr", addr)

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Addr:    addr,
		Storage: client,
	}
}

// Keys returns the keys matching pattern, for asserting what a repository wrote.
func (that *Suite) Keys(ctx context.Context, pattern string) []string {
	that.Helper()

	keys, err := that.Storage.Keys(ctx, pattern).Result()
	if err != nil {
		that.Fatalf("could not list keys %q: %v", pattern, err)
	}

	return keys
}

func redisTag() string {
	if tag := os.Getenv(redisTagEnv); tag != "" {
		return tag
	}

	return defaultRedisTag
}
