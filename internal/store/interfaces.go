package store

import (
	"context"
	"errors"

	"chairside.app/console/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrSchemaMissing is returned when the underlying relation does not exist
// (SQLSTATE 42P01). It is a fatal system state requiring operator setup, not
// a per-request failure.
var ErrSchemaMissing = errors.New("schema missing")

// TenantStore defines the contract for tenant data access
type TenantStore interface {
	// FindTenantIDByEmail resolves an email to its tenant, checking employee
	// rows first and falling back to the tenant owner email.
	FindTenantIDByEmail(ctx context.Context, email string) (model.TenantID, error)
	// GetSnapshot loads the tenant and all child entities.
	GetSnapshot(ctx context.Context, id model.TenantID) (*model.TenantSnapshot, error)
	// GetRef loads id and name only. Used by invite-link previews, no auth.
	GetRef(ctx context.Context, id model.TenantID) (*model.TenantRef, error)
	Upsert(ctx context.Context, tenant *model.Tenant) error
	UpdatePlan(ctx context.Context, id model.TenantID, plan model.TenantPlan) error
	UpdateStatus(ctx context.Context, id model.TenantID, status model.TenantStatus) error
	UpdateGovernance(ctx context.Context, id model.TenantID, governance model.GovernanceConfig) error
	List(ctx context.Context) ([]model.TenantOverview, error)
	Delete(ctx context.Context, id model.TenantID) error // cascades to children
}

// ClinicStore defines the contract for clinic data access
type ClinicStore interface {
	Upsert(ctx context.Context, clinic *model.Clinic) error
	Delete(ctx context.Context, tenantID model.TenantID, id string) error
	ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Clinic, error)
}

// EmployeeStore defines the contract for employee data access
type EmployeeStore interface {
	Upsert(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, tenantID model.TenantID, id string) error
	SetAssignedSystems(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) error
	ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Employee, error)
}

// SystemStore defines the contract for system subscription data access
type SystemStore interface {
	Upsert(ctx context.Context, system *model.System) error
	Delete(ctx context.Context, tenantID model.TenantID, id string) error
	ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.System, error)
}

// SessionStore defines the contract for session data access
type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	// UpdateTenantLinkage persists the cached tenant linkage on the session.
	// The resolution engine is the single writer.
	UpdateTenantLinkage(ctx context.Context, id int64, tenantID model.TenantID) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}
