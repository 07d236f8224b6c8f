// cache — кэш HTTP-ответов в Redis.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry — закэшированный ответ.
type Entry struct {
	Status      int
	ContentType string
	Body        []byte
}

// ResponseCache — минимальный контракт кэша ответов.
type ResponseCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, key string) (*Entry, bool, error)
	// Set сохраняет запись с TTL.
	Set(ctx context.Context, key string, e *Entry, ttl time.Duration) error
	// Ping проверяет доступность Redis.
	Ping(ctx context.Context) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "hotel-listing:response:".
func NewRedisCache(ctx context.Context, redisURL, prefix string) (ResponseCache, error) {
	const op = "cache.NewRedisCache"

	if prefix == "" {
		prefix = "hotel-listing:response:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

// Храним как Redis Hash с полями: st (статус), ct (Content-Type), body.
func (c *redisCache) Get(ctx context.Context, key string) (*Entry, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(key)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	status, err := strconv.Atoi(m["st"])
	if err != nil {
		return nil, false, err
	}

	return &Entry{
		Status:      status,
		ContentType: m["ct"],
		Body:        []byte(m["body"]),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, e *Entry, ttl time.Duration) error {
	kv := map[string]string{
		"st":   strconv.Itoa(e.Status),
		"ct":   e.ContentType,
		"body": string(e.Body),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(key), kv)
	pipe.Expire(ctx, c.key(key), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Ping(ctx context.Context) error { return c.rdb.Ping(ctx).Err() }

func (c *redisCache) Close() error { return c.rdb.Close() }
