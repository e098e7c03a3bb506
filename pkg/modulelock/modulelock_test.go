package modulelock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"countervalidator/pkg/logger"
	"countervalidator/pkg/modulelock"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	t.Cleanup(func() {
		_ = client.Close()
		_ = container.Terminate(ctx)
	})

	return client
}

func TestLocker_AcquireRelease(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	locker := modulelock.New(client, modulelock.Options{
		URLs:         []string{"http://vm1/", "http://vm2/"},
		TTL:          time.Second,
		PollInterval: 50 * time.Millisecond,
	})

	first, err := locker.Acquire(ctx)
	require.NoError(t, err)
	require.Equal(t, "http://vm1/", first.URL())

	second, err := locker.Acquire(ctx)
	require.NoError(t, err)
	require.Equal(t, "http://vm2/", second.URL())

	locked, err := locker.Locked(ctx, "http://vm1/")
	require.NoError(t, err)
	require.True(t, locked)

	// the lease outlives its TTL while held
	time.Sleep(1500 * time.Millisecond)
	locked, err = locker.Locked(ctx, "http://vm1/")
	require.NoError(t, err)
	require.True(t, locked)

	// every module is busy: the caller waits until its context ends
	short, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(short)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Release(ctx))
	require.NoError(t, first.Release(ctx))
	locked, err = locker.Locked(ctx, "http://vm1/")
	require.NoError(t, err)
	require.False(t, locked)

	third, err := locker.Acquire(ctx)
	require.NoError(t, err)
	require.Equal(t, "http://vm1/", third.URL())
	require.NoError(t, third.Release(ctx))
	require.NoError(t, second.Release(ctx))
}

func TestLocker_WaitsForFreeModule(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	locker := modulelock.New(client, modulelock.Options{
		URLs:         []string{"http://only/"},
		TTL:          time.Second,
		PollInterval: 20 * time.Millisecond,
	})

	held, err := locker.Acquire(ctx)
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = held.Release(ctx)
	}()

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	next, err := locker.Acquire(waitCtx)
	require.NoError(t, err)
	require.Equal(t, "http://only/", next.URL())
	require.NoError(t, next.Release(ctx))
}

func TestLocker_NoModules(t *testing.T) {
	locker := modulelock.New(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), modulelock.Options{})
	_, err := locker.Acquire(context.Background())
	require.ErrorIs(t, err, modulelock.ErrNoModules)
}
