package service

import (
	"context"
	"errors"
	"log/slog"

	"chairside.app/console/internal/model"
	"chairside.app/console/internal/store"
)

// MutationResult is the uniform outcome of every workspace write: a
// user-facing message plus the reloaded snapshot. The snapshot is reloaded
// whether the write succeeded or not, so the caller's view always matches
// the database.
type MutationResult struct {
	OK       bool                  `json:"ok"`
	Message  string                `json:"message"`
	Snapshot *model.TenantSnapshot `json:"snapshot,omitempty"`
}

// MutationGateway funnels every tenant-scoped write through one path:
// run the mutation, reload that tenant's snapshot, refresh the cache,
// translate the outcome into a notification.
type MutationGateway interface {
	Apply(ctx context.Context, tenantID model.TenantID, successMessage string, mutation func(ctx context.Context) error) (*MutationResult, error)
}

type mutationGateway struct {
	tenants   store.TenantStore
	snapshots SnapshotCache
}

func NewMutationGateway(tenants store.TenantStore, snapshots SnapshotCache) MutationGateway {
	return &mutationGateway{tenants: tenants, snapshots: orNopCache(snapshots)}
}

func (g *mutationGateway) Apply(ctx context.Context, tenantID model.TenantID, successMessage string, mutation func(ctx context.Context) error) (*MutationResult, error) {
	mutErr := mutation(ctx)

	snapshot, err := g.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		slog.WarnContext(ctx, "snapshot reload after mutation failed",
			"error", err, "tenant_id", tenantID)
		snapshot = nil
	} else {
		g.snapshots.Set(ctx, snapshot)
	}

	if mutErr != nil {
		slog.ErrorContext(ctx, "workspace mutation failed",
			"error", mutErr, "tenant_id", tenantID)
		return &MutationResult{OK: false, Message: failureMessage(mutErr), Snapshot: snapshot}, nil
	}
	return &MutationResult{OK: true, Message: successMessage, Snapshot: snapshot}, nil
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrSchemaMissing):
		return "The database schema is not installed. Contact your operator."
	case errors.Is(err, store.ErrNotFound):
		return "The record no longer exists."
	default:
		return "The change could not be saved. Please try again."
	}
}
