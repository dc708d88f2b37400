package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/labela/labela-control/internal/model"
)

// RedisRepository stores the session as JSON under a single key.
type RedisRepository struct {
	client redis.Cmdable
	key    string
}

func NewRedisRepository(client redis.Cmdable, key string) *RedisRepository {
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Load(ctx context.Context) (*model.Session, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

func (r *RedisRepository) Save(ctx context.Context, s *model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, raw, 0).Err()
}

func (r *RedisRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
