package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artem13815/after42/pkg/kv"
)

// KVRepository implements kv.Store on top of plain Redis strings.
type KVRepository struct {
	client goredis.UniversalClient
}

func NewKVRepository(client goredis.UniversalClient) *KVRepository {
	return &KVRepository{client: client}
}

func (r *KVRepository) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", kv.ErrNotFound
		}
		return "", err
	}
	return v, nil
}

// Set stores value without expiry, matching browser storage.
func (r *KVRepository) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *KVRepository) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
