package orders

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locks outlive any reasonable reconciliation attempt but expire on their
// own if a holder dies mid-flight.
const intentLockTTL = 2 * time.Minute

// RedisIntentLock takes a short SETNX lock per payment intent so concurrent
// submissions from the success page and the polling page serialize.
type RedisIntentLock struct {
	Client *redis.Client
}

func (l *RedisIntentLock) Acquire(ctx context.Context, intentID string) (bool, error) {
	return l.Client.SetNX(ctx, "order:intent:"+intentID, "1", intentLockTTL).Result()
}

func (l *RedisIntentLock) Release(ctx context.Context, intentID string) {
	if err := l.Client.Del(ctx, "order:intent:"+intentID).Err(); err != nil {
		log.Printf("⚠️ Failed to release intent lock %s: %v", intentID, err)
	}
}
