package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultEventTTL = 24 * time.Hour

// RedisEventStore keeps processed webhook event ids in Redis so that retried
// deliveries are handled once.
type RedisEventStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisEventStore(client redis.UniversalClient, ttl time.Duration) *RedisEventStore {
	if ttl <= 0 {
		ttl = defaultEventTTL
	}

	return &RedisEventStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, webhookEventKey(eventID), time.Now().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark webhook event %s as processed: %w", eventID, err)
	}

	return ok, nil
}

func (s *RedisEventStore) Release(ctx context.Context, eventID string) error {
	err := s.client.Del(ctx, webhookEventKey(eventID)).Err()
	if err != nil {
		return fmt.Errorf("failed to release webhook event %s: %w", eventID, err)
	}

	return nil
}

func webhookEventKey(eventID string) string {
	return fmt.Sprintf("webhook_event:%s", eventID)
}
