package infra_redis_init

import (
	"context"
	"fmt"
	"log"
	"net"

	"github.com/adithyagarapati/movie-analyzer/internal/config"
	"github.com/go-redis/redis"
)

// Connect dials the mode flag store and pings it within ctx.
func Connect(ctx context.Context, cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.WithContext(ctx).Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", client.Options().Addr, err)
	}

	return client, nil
}

func MustEstablishConn(ctx context.Context, cfg config.RedisCache) *redis.Client {
	client, err := Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("[redis] %v", err)
	}
	return client
}
