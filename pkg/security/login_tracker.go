package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"recruitment-portal/pkg/logger"
	"recruitment-portal/pkg/redis"
)

// LoginTrackerConfig holds the lockout thresholds.
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before a block, 0 disables tracking
	AttemptWindow time.Duration // how long a failure counts
	BlockDuration time.Duration
}

func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed logins per username in Redis and blocks the
// username once the threshold is reached. Without Redis it never blocks.
type LoginTracker struct {
	config LoginTrackerConfig
	client func() *goredis.Client
}

func NewLoginTracker(config LoginTrackerConfig) *LoginTracker {
	return &LoginTracker{config: config, client: redis.Client}
}

const (
	failLoginUserPrefix    = "fail:login:user:"
	blockedLoginUserPrefix = "blocked:login:user:"
)

// KEYS[1] = counter key, ARGV[1] = TTL in seconds
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// Lockout keys ignore case and surrounding space.
func subject(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (lt *LoginTracker) enabled() (*goredis.Client, bool) {
	if lt.config.MaxAttempts <= 0 {
		return nil, false
	}
	c := lt.client()
	return c, c != nil
}

// Blocked reports whether username is currently locked out.
func (lt *LoginTracker) Blocked(ctx context.Context, username string) (bool, error) {
	client, ok := lt.enabled()
	if !ok {
		return false, nil
	}

	n, err := client.Exists(ctx, blockedLoginUserPrefix+subject(username)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check login block: %w", err)
	}
	return n > 0, nil
}

// RecordFailure counts a failed attempt and creates the block when the
// threshold is reached.
func (lt *LoginTracker) RecordFailure(ctx context.Context, username string) error {
	client, ok := lt.enabled()
	if !ok {
		return nil
	}

	key := subject(username)
	ttl := int(lt.config.AttemptWindow.Seconds())
	if ttl < 1 {
		ttl = 1
	}

	result, err := client.Eval(ctx, incrWithTTLScript, []string{failLoginUserPrefix + key}, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to increment login failures: %w", err)
	}
	count, ok := result.(int64)
	if !ok {
		return errors.New("unexpected result type from Lua script")
	}

	if int(count) < lt.config.MaxAttempts {
		return nil
	}

	if err := client.Set(ctx, blockedLoginUserPrefix+key, "1", lt.config.BlockDuration).Err(); err != nil {
		return fmt.Errorf("failed to set login block: %w", err)
	}
	client.Del(ctx, failLoginUserPrefix+key)

	logger.Log.Warn("login blocked",
		"username", key,
		"attempts", count,
		"block_minutes", int(lt.config.BlockDuration.Minutes()),
	)
	return nil
}

// Reset clears the failure counter after a successful login.
func (lt *LoginTracker) Reset(ctx context.Context, username string) error {
	client, ok := lt.enabled()
	if !ok {
		return nil
	}
	if err := client.Del(ctx, failLoginUserPrefix+subject(username)).Err(); err != nil {
		return fmt.Errorf("failed to clear login failures: %w", err)
	}
	return nil
}
