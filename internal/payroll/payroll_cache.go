package payroll

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	PayrollKeyPrefix = "pay_"
	ListKeyPrefix    = "pay_list_"

	DefaultCacheTTL = time.Hour

	scanBatch = 100
)

func PayrollKey(id string) string {
	return PayrollKeyPrefix + id
}

// ListKey derives the cache key of one list query. filter must be normalized
// so equivalent queries share a key.
func ListKey(f ListFilter) string {
	return fmt.Sprintf("%se=%s:m=%s:s=%s:p=%d:l=%d:o=%s:%s",
		ListKeyPrefix, f.EmployeeID, f.Month, f.Status, f.Page, f.Limit, f.Sort, f.Order)
}

// Cache is the Redis read cache for payroll records and list pages. A nil
// Cache, or one without a client, misses every read and ignores writes.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

func (c *Cache) enabled() bool {
	return c != nil && c.rdb != nil
}

// Get decodes the cached value at key into dst and reports whether it did.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func (c *Cache) Set(ctx context.Context, key string, v any) error {
	if !c.enabled() {
		return nil
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, payload, c.ttl).Err()
}

// Invalidate drops the record's entry and every cached list page, since any
// page may contain the record.
func (c *Cache) Invalidate(ctx context.Context, payrollID string) error {
	if !c.enabled() {
		return nil
	}
	if err := c.rdb.Del(ctx, PayrollKey(payrollID)).Err(); err != nil {
		return err
	}

	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, ListKeyPrefix+"*", scanBatch).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
