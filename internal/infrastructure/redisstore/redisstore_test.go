package redisstore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sportsconnect/sportsconnect-api/internal/application"
)

var rdb *redis.Client

func startRedis(ctx context.Context) (string, func()) {
	cont, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := cont.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := cont.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%s:%s", host, port.Port()), func() { _ = cont.Terminate(ctx) }
}

func TestMain(m *testing.M) {
	if os.Getenv("INTEGRATION") != "1" {
		os.Exit(0)
	}
	addr, stop := startRedis(context.Background())
	rdb = redis.NewClient(&redis.Options{Addr: addr})
	code := m.Run()
	_ = rdb.Close()
	stop()
	os.Exit(code)
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(rdb, time.Minute)

	missing, err := store.Get(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Save(ctx, application.Session{UserID: "u1", SessionID: "s1", Email: "a@b.c"}))
	require.NoError(t, store.Save(ctx, application.Session{UserID: "u1", SessionID: "s2", Email: "a@b.c"}))

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s2", got.SessionID)

	ttl, err := rdb.TTL(ctx, sessionKey("u1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "u1"))
	got, err = store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLinkCache(t *testing.T) {
	ctx := context.Background()
	cache := NewLinkCache(rdb, time.Minute)

	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, map[string]string{"Alpha": "https://alpha.edu"}))
	links, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://alpha.edu", links["Alpha"])

	require.NoError(t, cache.Invalidate(ctx))
	_, ok, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
