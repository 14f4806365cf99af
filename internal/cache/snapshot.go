package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"chairside.app/console/internal/model"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache is a best-effort read-through cache for tenant snapshots.
// A nil *SnapshotCache is valid and disables caching; every failure degrades
// to the store, never to the caller.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if client == nil {
		return nil
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

func (c *SnapshotCache) Get(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(tenantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.DebugContext(ctx, "snapshot cache read failed", "error", err, "tenant_id", tenantID)
		}
		return nil, false
	}

	var snapshot model.TenantSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		slog.DebugContext(ctx, "snapshot cache decode failed", "error", err, "tenant_id", tenantID)
		return nil, false
	}
	return &snapshot, true
}

func (c *SnapshotCache) Set(ctx context.Context, snapshot *model.TenantSnapshot) {
	if c == nil || snapshot == nil {
		return
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		slog.DebugContext(ctx, "snapshot cache encode failed", "error", err, "tenant_id", snapshot.Tenant.ID)
		return
	}
	if err := c.client.Set(ctx, key(snapshot.Tenant.ID), raw, c.ttl).Err(); err != nil {
		slog.DebugContext(ctx, "snapshot cache write failed", "error", err, "tenant_id", snapshot.Tenant.ID)
	}
}

func (c *SnapshotCache) Invalidate(ctx context.Context, tenantID model.TenantID) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, key(tenantID)).Err(); err != nil {
		slog.DebugContext(ctx, "snapshot cache invalidate failed", "error", err, "tenant_id", tenantID)
	}
}

func key(tenantID model.TenantID) string {
	return "console:snapshot:" + string(tenantID)
}
