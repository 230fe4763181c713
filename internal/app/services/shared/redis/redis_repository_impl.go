package redis

import (
	"clinic-staff-service/internal/app/contracts"
	"clinic-staff-service/internal/pkg/exceptions"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// deleteIfEqualsScript deletes KEYS[1] only while it holds ARGV[1].
var deleteIfEqualsScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{client: client}
}

func (r *redisRepository) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRepository) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	payload, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, exceptions.ErrRedisGetNoData(err, key)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return true, exceptions.ErrCannotParseJSON(err)
	}
	return true, nil
}

func (r *redisRepository) SetIfAbsent(ctx context.Context, key, token string, ttl time.Duration) (bool, error) {
	stored, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return false, exceptions.ErrRedisSet(err)
	}
	return stored, nil
}

func (r *redisRepository) DeleteIfEquals(ctx context.Context, key, token string) (bool, error) {
	deleted, err := deleteIfEqualsScript.Run(ctx, r.client, []string{key}, token).Int64()
	if err != nil {
		return false, exceptions.ErrRedisUnlock(err)
	}
	return deleted == 1, nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}
