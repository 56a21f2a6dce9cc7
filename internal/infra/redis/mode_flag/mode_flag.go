package infra_redis_mode_flag

import (
	"context"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/go-redis/redis"
)

// flagName matches the key older front-end builds kept in localStorage.
const flagName = "imageSource"

type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) LoadMode(ctx context.Context) (string, error) {
	val, err := d.client.WithContext(ctx).Get(d.getFullKey()).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (d *Driver) SaveMode(ctx context.Context, mode model.ImageSourceMode) error {
	return d.client.WithContext(ctx).Set(d.getFullKey(), mode.String(), 0).Err()
}

func (d *Driver) getFullKey() string {
	if d.key != "" {
		return d.key + ":" + flagName
	}
	return flagName
}
