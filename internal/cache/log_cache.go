package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"exercise-tracker/internal/model"
	"exercise-tracker/internal/repository"
)

// LogCache stores rendered exercise logs. Entries are namespaced by a
// per-user version counter so a single INCR drops every cached query for
// that user.
type LogCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewLogCache(client *redisv9.Client, ttl time.Duration) *LogCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &LogCache{
		client: client,
		ttl:    ttl,
	}
}

// GetLog looks up a cached log. On a miss it still returns the key a fresh
// result must be stored under: the key pins the version seen before storage
// was read, so a write racing the read leaves the stored entry unreachable.
func (c *LogCache) GetLog(ctx context.Context, filter repository.ExerciseFilter) (*model.ExerciseLog, string, error) {
	key, err := c.logKey(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	raw, err := c.client.Get(ctx, key).Result()
	if err == redisv9.Nil {
		return nil, key, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("redis get exercise log failed: %w", err)
	}

	var log model.ExerciseLog
	if err := json.Unmarshal([]byte(raw), &log); err != nil {
		return nil, key, fmt.Errorf("unmarshal cached exercise log failed: %w", err)
	}
	return &log, key, nil
}

func (c *LogCache) SetLog(ctx context.Context, key string, log *model.ExerciseLog) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("marshal exercise log cache failed: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set exercise log failed: %w", err)
	}
	return nil
}

func (c *LogCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Incr(ctx, c.versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis bump exercise log version failed: %w", err)
	}
	return nil
}

func (c *LogCache) logKey(ctx context.Context, filter repository.ExerciseFilter) (string, error) {
	version, err := c.client.Get(ctx, c.versionKey(filter.UserID)).Int64()
	if err == redisv9.Nil {
		version = 0
	} else if err != nil {
		return "", fmt.Errorf("redis get exercise log version failed: %w", err)
	}
	return fmt.Sprintf("exercise:logs:%s:v%d:%s:%s:%d",
		filter.UserID, version, filter.From, filter.To, filter.Limit), nil
}

func (c *LogCache) versionKey(userID string) string {
	return fmt.Sprintf("exercise:logs:version:%s", userID)
}
