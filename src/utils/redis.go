package utils

import (
	"context"
	"fmt"
	"time"

	DB "Backend-Blueview/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ensureClient returns the shared Redis client managed by the database
// package. Nil when Redis was never configured; callers handle that case.
func ensureClient() *redis.Client {
	return DB.RedisClient
}

// StoreFastLoginToken stores an SMS fast-login token with its expiry.
// No-op without Redis (development mode).
func StoreFastLoginToken(token, workerID string, expiresIn time.Duration) error {
	client := ensureClient()
	if client == nil {
		return nil
	}

	key := fmt.Sprintf("fast_login:%s", token)
	if err := client.Set(Ctx, key, workerID, expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to store fast-login token: %v", err)
	}
	return nil
}

// ResolveFastLoginToken returns the worker id a token was issued for, or ""
// when unknown/expired. The ok==false return distinguishes "Redis down" from
// "token invalid".
func ResolveFastLoginToken(token string) (workerID string, ok bool, err error) {
	client := ensureClient()
	if client == nil {
		return "", false, nil
	}

	key := fmt.Sprintf("fast_login:%s", token)
	val, err := client.Get(Ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", true, nil
		}
		return "", false, fmt.Errorf("failed to get fast-login token: %v", err)
	}
	return val, true, nil
}

// InvalidateFastLoginToken deletes a consumed token.
func InvalidateFastLoginToken(token string) error {
	client := ensureClient()
	if client == nil {
		return nil
	}
	return client.Del(Ctx, fmt.Sprintf("fast_login:%s", token)).Err()
}

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// RecordLoginAttempt bumps the per-email failure counter.
func RecordLoginAttempt(email string, success bool) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := fmt.Sprintf("login_attempts:%s", email)
	if success {
		client.Del(Ctx, key)
		return
	}
	n, err := client.Incr(Ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		client.Expire(Ctx, key, loginCooldown)
	}
}

// IsRateLimited reports whether an email has exceeded the failed-login budget.
func IsRateLimited(email string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	n, err := client.Get(Ctx, fmt.Sprintf("login_attempts:%s", email)).Int64()
	if err != nil {
		return false
	}
	return n >= maxLoginAttempts
}

// RemainingCooldown time before the failing email may try again.
func RemainingCooldown(email string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}
	d, err := client.TTL(Ctx, fmt.Sprintf("login_attempts:%s", email)).Result()
	if err != nil || d < 0 {
		return 0
	}
	return d
}
