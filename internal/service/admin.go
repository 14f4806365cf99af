package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/store"
)

// AdminService is the platform operator surface: cross-tenant listing,
// plan and status management, tenant deletion.
type AdminService interface {
	ListTenants(ctx context.Context) ([]model.TenantOverview, error)
	GetTenant(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error)
	UpdatePlan(ctx context.Context, tenantID model.TenantID, plan model.TenantPlan) error
	UpdateStatus(ctx context.Context, tenantID model.TenantID, status model.TenantStatus) error
	// DeleteTenant removes the tenant and all child rows, then attempts to
	// delete the owner's identity. Identity deletion failure is logged and
	// swallowed; the orphaned identity recovers itself on next sign-in.
	DeleteTenant(ctx context.Context, tenantID model.TenantID) error
}

type adminService struct {
	tenants   store.TenantStore
	provider  identity.Provider
	snapshots SnapshotCache
}

func NewAdminService(tenants store.TenantStore, provider identity.Provider, snapshots SnapshotCache) AdminService {
	return &adminService{tenants: tenants, provider: provider, snapshots: orNopCache(snapshots)}
}

func (s *adminService) ListTenants(ctx context.Context) ([]model.TenantOverview, error) {
	overviews, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tenants: %w", err)
	}
	return overviews, nil
}

func (s *adminService) GetTenant(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	snapshot, err := s.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("loading tenant snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *adminService) UpdatePlan(ctx context.Context, tenantID model.TenantID, plan model.TenantPlan) error {
	if err := s.tenants.UpdatePlan(ctx, tenantID, plan); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("updating tenant plan: %w", err)
	}
	s.snapshots.Invalidate(ctx, tenantID)
	return nil
}

func (s *adminService) UpdateStatus(ctx context.Context, tenantID model.TenantID, status model.TenantStatus) error {
	if err := s.tenants.UpdateStatus(ctx, tenantID, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("updating tenant status: %w", err)
	}
	s.snapshots.Invalidate(ctx, tenantID)
	return nil
}

func (s *adminService) DeleteTenant(ctx context.Context, tenantID model.TenantID) error {
	snapshot, err := s.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("loading tenant snapshot: %w", err)
	}

	if err := s.tenants.Delete(ctx, tenantID); err != nil {
		return fmt.Errorf("deleting tenant: %w", err)
	}
	s.snapshots.Invalidate(ctx, tenantID)

	// Tenant rows are gone. Identity cleanup past this point must not fail
	// the operation; a leftover identity resolves as orphaned and recovers.
	if err := s.provider.DeleteByEmail(ctx, snapshot.Tenant.OwnerEmail); err != nil {
		slog.WarnContext(ctx, "failed to delete owner identity after tenant deletion",
			"error", err, "tenant_id", tenantID, "email", snapshot.Tenant.OwnerEmail)
	}

	slog.InfoContext(ctx, "tenant deleted", "tenant_id", tenantID, "name", snapshot.Tenant.Name)
	return nil
}
