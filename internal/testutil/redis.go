// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
)

// RedisClient returns a traced client against REDIS_ADDR, or against a
// throwaway redis container. The test is skipped when neither is available.
func RedisClient(t *testing.T) *redisclient.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	addr := os.Getenv("REDIS_ADDR")
	var opts *redis.Options
	if addr != "" {
		opts = &redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD")}
	} else {
		container, err := tcredis.Run(ctx, "redis:7-alpine")
		if err != nil {
			t.Skipf("Skipping Redis integration test: cannot start container: %v", err)
		}
		t.Cleanup(func() {
			_ = container.Terminate(context.Background())
		})

		uri, err := container.ConnectionString(ctx)
		if err != nil {
			t.Skipf("Skipping Redis integration test: %v", err)
		}
		opts, err = redis.ParseURL(uri)
		if err != nil {
			t.Fatalf("invalid redis connection string %q: %v", uri, err)
		}
	}

	client := redisclient.NewClient(redis.NewClient(opts))
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Skipping Redis integration test: ping failed: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}
