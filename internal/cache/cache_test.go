package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты: поднимают Redis через testcontainers-go.
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1

func startRedis(t *testing.T) string {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "not a url", "")
	require.Error(t, err)
}

func TestRedisCache_SetGetExpire(t *testing.T) {
	url := startRedis(t)
	ctx := context.Background()

	c, err := NewRedisCache(ctx, url, "test:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.Get(ctx, "/api/v1/countries/all")
	require.NoError(t, err)
	require.False(t, ok)

	want := &Entry{Status: 200, ContentType: "application/json", Body: []byte(`[{"id":1}]`)}
	require.NoError(t, c.Set(ctx, "/api/v1/countries/all", want, time.Second))

	got, ok, err := c.Get(ctx, "/api/v1/countries/all")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	require.Eventually(t, func() bool {
		_, ok, err := c.Get(ctx, "/api/v1/countries/all")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond)
}
