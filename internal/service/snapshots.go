package service

import (
	"context"

	"chairside.app/console/internal/model"
)

// SnapshotCache is the read-through snapshot store the services consult
// before hitting the database. *cache.SnapshotCache satisfies it.
type SnapshotCache interface {
	Get(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, bool)
	Set(ctx context.Context, snapshot *model.TenantSnapshot)
	Invalidate(ctx context.Context, tenantID model.TenantID)
}

// nopSnapshotCache stands in when no cache is configured: every read
// misses, every write is dropped.
type nopSnapshotCache struct{}

func (nopSnapshotCache) Get(context.Context, model.TenantID) (*model.TenantSnapshot, bool) {
	return nil, false
}
func (nopSnapshotCache) Set(context.Context, *model.TenantSnapshot) {}
func (nopSnapshotCache) Invalidate(context.Context, model.TenantID) {}

func orNopCache(snapshots SnapshotCache) SnapshotCache {
	if snapshots == nil {
		return nopSnapshotCache{}
	}
	return snapshots
}
