package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the lock only if it is still held by the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RequestLockRepository provides per-request mutual exclusion across instances using Redis
type RequestLockRepository struct {
	client *redis.Client
	ttl    time.Duration // lock lifetime if the holder never releases it
	log    *zap.SugaredLogger
}

// NewRequestLockRepository creates a new lock repository with the given TTL
func NewRequestLockRepository(client *redis.Client, ttl time.Duration, log *zap.SugaredLogger) *RequestLockRepository {
	return &RequestLockRepository{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func lockKey(requestID int64) string {
	return fmt.Sprintf("withdrawal_lock:%d", requestID)
}

// Acquire tries to take the lock for a request id.
// It returns the holder token and whether the lock was taken.
func (r *RequestLockRepository) Acquire(ctx context.Context, requestID int64) (string, bool, error) {
	key := lockKey(requestID)
	token := uuid.NewString()

	ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()

	r.log.Debugw("lock acquire",
		"key", key,
		"result", ok,
		"error", err,
	)

	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lock if the token still owns it.
func (r *RequestLockRepository) Release(ctx context.Context, requestID int64, token string) error {
	key := lockKey(requestID)
	err := releaseScript.Run(ctx, r.client, []string{key}, token).Err()

	r.log.Debugw("lock release",
		"key", key,
		"error", err,
	)

	return err
}
