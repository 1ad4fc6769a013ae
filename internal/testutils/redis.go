package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// CreateTestRedisClient starts a throwaway Redis container and returns a
// client connected to it. The test is skipped when no container runtime
// is available, so the integration suite degrades gracefully on machines
// without Docker.
func CreateTestRedisClient(t *testing.T) redis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("Redis container not available for testing: %v", err)
	}
	t.Cleanup(func() {
		if terminateErr := testcontainers.TerminateContainer(container); terminateErr != nil {
			t.Logf("terminating redis container: %v", terminateErr)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "Failed to resolve redis container URI")

	opts, err := redis.ParseURL(uri)
	require.NoError(t, err, "Failed to parse redis container URI")

	client := redis.NewClient(opts)
	t.Cleanup(func() {
		_ = client.Close()
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, client.Ping(pingCtx).Err(), "Failed to ping test redis")

	return client
}
