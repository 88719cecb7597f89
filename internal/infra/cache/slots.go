package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SlotCache keeps computed availability lists in redis for a short TTL.
// Failures degrade to recomputation, never to an error for the caller.
type SlotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSlotCache(client *redis.Client, ttl time.Duration) *SlotCache {
	return &SlotCache{client: client, ttl: ttl}
}

func slotKey(key queries.SlotCacheKey) string {
	return fmt.Sprintf("slots:%s:%s:%s:%d:%d",
		key.TenantID, key.StaffID, key.Date, key.DurationMin, key.StepMin)
}

func (c *SlotCache) Get(ctx context.Context, key queries.SlotCacheKey) ([]string, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, slotKey(key)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		slog.Warn("corrupt slot cache entry", "key", slotKey(key), "error", err)
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, key queries.SlotCacheKey, slots []string) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, slotKey(key), raw, c.ttl).Err(); err != nil {
		slog.Warn("failed to write slot cache", "key", slotKey(key), "error", err)
	}
}

// Invalidate drops every cached list for the staff member and date,
// whatever duration or step it was computed with. Called after any write
// that changes the booking set for that day.
func (c *SlotCache) Invalidate(ctx context.Context, tenantID string, staffID uuid.UUID, date string) {
	if c.client == nil {
		return
	}

	pattern := fmt.Sprintf("slots:%s:%s:%s:*", tenantID, staffID, date)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			slog.Warn("failed to invalidate slot cache", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		slog.Warn("slot cache scan failed", "pattern", pattern, "error", err)
	}
}
