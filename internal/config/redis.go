package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/udyam-reg/app-udyam/internal/logging"
	"github.com/udyam-reg/app-udyam/internal/redisclient"
	"go.uber.org/zap"
)

var (
	// Redis client. Nil when neither REDIS_URI nor cluster mode is configured.
	Redis *redisclient.Client
)

// InitRedis initializes the Redis connection. It is a no-op when Redis is
// not configured.
func InitRedis() error {
	client, target, err := newRedisClient(AppConfig)
	if err != nil {
		return err
	}
	if client == nil {
		logging.Logger.Info("redis is not configured, using in-memory stores")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Logger.Error("failed to connect to Redis",
			zap.String("target", target),
			zap.Error(err))
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	Redis = client
	logging.Logger.Info("connected to Redis", zap.String("target", target))
	return nil
}

// newRedisClient builds a traced client for cluster or single-node mode.
// It returns a nil client when Redis is not configured. target is a
// loggable description with credentials masked.
func newRedisClient(cfg *Config) (*redisclient.Client, string, error) {
	if cfg.RedisClusterEnabled {
		rdb := redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        cfg.RedisClusterAddrs,
			Password:     cfg.RedisPassword,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
		})
		return redisclient.NewClusterClient(rdb), "cluster:" + strings.Join(cfg.RedisClusterAddrs, ","), nil
	}

	if cfg.RedisURI == "" {
		return nil, "", nil
	}
	opts, err := redisOptions(cfg.RedisURI, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, "", err
	}
	return redisclient.NewClient(redis.NewClient(opts)), maskRedisURI(cfg.RedisURI), nil
}

// CloseRedis closes the Redis connection if one is open.
func CloseRedis() {
	if Redis == nil {
		return
	}
	if err := Redis.Close(); err != nil {
		logging.Logger.Warn("failed to close Redis", zap.Error(err))
	}
	Redis = nil
}

// redisOptions accepts either a redis:// URL or a bare host:port address.
func redisOptions(uri, password string, db int) (*redis.Options, error) {
	if strings.HasPrefix(uri, "redis://") || strings.HasPrefix(uri, "rediss://") {
		opts, err := redis.ParseURL(uri)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_URI: %w", err)
		}
		if password != "" {
			opts.Password = password
		}
		applyPoolDefaults(opts)
		return opts, nil
	}

	opts := &redis.Options{
		Addr:     uri,
		Password: password,
		DB:       db,
	}
	applyPoolDefaults(opts)
	return opts, nil
}

func applyPoolDefaults(opts *redis.Options) {
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
}

// maskRedisURI hides credentials embedded in a redis URL
func maskRedisURI(uri string) string {
	at := strings.LastIndex(uri, "@")
	if at < 0 {
		return uri
	}
	scheme := ""
	if i := strings.Index(uri, "://"); i >= 0 {
		scheme = uri[:i+3]
	}
	return scheme + "****:****@" + uri[at+1:]
}
