package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "receipt:points:"

// RedisRepository хранит баллы в Redis. Ключи создаются без TTL.
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository подключается к Redis по адресу addr и проверяет соединение.
func NewRedisRepository(ctx context.Context, addr string) (*RedisRepository, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisRepository{client: client}, nil
}

// Close закрывает соединение с Redis.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// SavePoints сохраняет баллы, перезаписывая предыдущее значение.
func (r *RedisRepository) SavePoints(ctx context.Context, id string, points int) error {
	if err := r.client.Set(ctx, redisKeyPrefix+id, points, 0).Err(); err != nil {
		return fmt.Errorf("save points: %w", err)
	}
	return nil
}

// GetPoints возвращает сохранённые баллы или ErrNotFound.
func (r *RedisRepository) GetPoints(ctx context.Context, id string) (int, error) {
	val, err := r.client.Get(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get points: %w", err)
	}

	points, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("parse points %q: %w", val, err)
	}

	return points, nil
}
