package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const replayTTL = 24 * time.Hour

// ReplayChecker provides idempotency checks for ledger mutations backed by
// Redis. Key format: ledger:<account_id>:<idempotency_key>
type ReplayChecker struct {
	client *redis.Client
}

// NewReplayChecker creates a ReplayChecker wrapping the given Redis client.
func NewReplayChecker(client *redis.Client) *ReplayChecker {
	return &ReplayChecker{client: client}
}

// IsDuplicate reports whether a mutation with this idempotency key has
// already been applied to the account.
func (c *ReplayChecker) IsDuplicate(ctx context.Context, accountID, key string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(accountID, key)).Result()
	if err != nil {
		return false, fmt.Errorf("replay check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this mutation has been applied (expires after replayTTL).
func (c *ReplayChecker) Mark(ctx context.Context, accountID, key string) error {
	return c.client.Set(ctx, c.key(accountID, key), "1", replayTTL).Err()
}

func (c *ReplayChecker) key(accountID, key string) string {
	return fmt.Sprintf("ledger:%s:%s", accountID, key)
}
