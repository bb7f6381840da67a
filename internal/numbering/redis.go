package numbering

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Incrementer is the part of a redis client a sequence needs.
type Incrementer interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisSequence hands out consecutive numbers per prefix and year from a
// shared redis counter.
type RedisSequence struct {
	client    Incrementer
	keyPrefix string
}

func NewRedisSequence(client Incrementer, keyPrefix string) *RedisSequence {
	if keyPrefix == "" {
		keyPrefix = "docnum"
	}
	return &RedisSequence{client: client, keyPrefix: keyPrefix}
}

func (s *RedisSequence) Next(ctx context.Context, prefix string, year int) (string, error) {
	key := fmt.Sprintf("%s:%s:%d", s.keyPrefix, prefix, year)
	seq, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return "", fmt.Errorf("increment %s: %w", key, err)
	}
	return Format(prefix, year, seq), nil
}

// NewRedisClient opens a client for the numbering sequence.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
