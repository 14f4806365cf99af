package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chairside.app/console/common/id"
	"chairside.app/console/common/logger"
	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/store"
)

// ErrTenantNotFound is returned when a join targets a tenant that does not
// exist.
var ErrTenantNotFound = errors.New("tenant not found")

// Resolution is the outcome of mapping an authenticated user to tenant data.
// It is a closed set: SuperAdminView, Resolved, NoTenant or Orphaned.
// Handlers switch on the concrete type.
type Resolution interface {
	isResolution()
}

// SuperAdminView is returned for the platform operator, who sees every
// tenant instead of a single workspace.
type SuperAdminView struct {
	Tenants []model.TenantOverview
}

// Resolved carries the full workspace snapshot for the user's tenant.
type Resolved struct {
	Snapshot *model.TenantSnapshot
}

// NoTenant means the user has no linkage and no tenant data matches their
// email. First-time users land here before creating an organization.
type NoTenant struct{}

// Orphaned means the user's cached linkage points at a tenant that no longer
// exists. It is an expected state, recoverable by the user, not an error.
type Orphaned struct {
	StaleTenantID model.TenantID
}

func (SuperAdminView) isResolution() {}
func (Resolved) isResolution()       {}
func (NoTenant) isResolution()       {}
func (Orphaned) isResolution()       {}

// ResolutionEngine maps authenticated users to tenant data and performs the
// transitions out of the pending and orphaned states. It is the single
// writer of the cached tenant linkage.
type ResolutionEngine interface {
	// Resolve determines the workspace for the user. When the user is
	// pending and an email match is found, the linkage is persisted so the
	// lookup is skipped next session. Resolve never mutates tenant data.
	Resolve(ctx context.Context, sessionID int64, user *model.AppUser) (Resolution, error)

	// CreateOrganization bootstraps a new tenant for a user without one:
	// tenant record, headquarters clinic, then admin employee, in that
	// order. It re-checks the email linkage immediately before allocating a
	// fresh id, and completes a partially seeded tenant instead of
	// duplicating it, so retries converge.
	CreateOrganization(ctx context.Context, sessionID int64, user *model.AppUser, orgName string) (*model.TenantSnapshot, error)

	// JoinTenant links the user to an existing tenant as a staff employee.
	JoinTenant(ctx context.Context, sessionID int64, user *model.AppUser, tenantID model.TenantID) (*model.TenantSnapshot, error)

	// RecoverOrphan replaces a stale linkage with a freshly bootstrapped
	// tenant. The stale id is never reused.
	RecoverOrphan(ctx context.Context, sessionID int64, user *model.AppUser, orgName string) (*model.TenantSnapshot, error)
}

type resolutionEngine struct {
	tenants   store.TenantStore
	clinics   store.ClinicStore
	employees store.EmployeeStore
	sessions  store.SessionStore
	provider  identity.Provider
	snapshots SnapshotCache
}

func NewResolutionEngine(
	tenants store.TenantStore,
	clinics store.ClinicStore,
	employees store.EmployeeStore,
	sessions store.SessionStore,
	provider identity.Provider,
	snapshots SnapshotCache,
) ResolutionEngine {
	return &resolutionEngine{
		tenants:   tenants,
		clinics:   clinics,
		employees: employees,
		sessions:  sessions,
		provider:  provider,
		snapshots: orNopCache(snapshots),
	}
}

func (e *resolutionEngine) Resolve(ctx context.Context, sessionID int64, user *model.AppUser) (Resolution, error) {
	if user.IsSuperAdmin() {
		overviews, err := e.tenants.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing tenants: %w", err)
		}
		return SuperAdminView{Tenants: overviews}, nil
	}

	if !user.TenantID.IsPending() {
		snapshot, err := e.verifySnapshot(ctx, user.TenantID)
		if err == nil {
			return Resolved{Snapshot: snapshot}, nil
		}
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "tenant linkage is stale",
				"identity_id", user.ID, "tenant_id", user.TenantID)
			return Orphaned{StaleTenantID: user.TenantID}, nil
		}
		return nil, fmt.Errorf("loading tenant snapshot: %w", err)
	}

	tenantID, err := e.tenants.FindTenantIDByEmail(ctx, user.Email)
	if errors.Is(err, store.ErrNotFound) {
		return NoTenant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolving tenant by email: %w", err)
	}

	e.persistLinkage(ctx, sessionID, user, tenantID)

	snapshot, err := e.loadSnapshot(ctx, tenantID)
	if errors.Is(err, store.ErrNotFound) {
		// tenant vanished between lookup and load
		return Orphaned{StaleTenantID: tenantID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading tenant snapshot: %w", err)
	}
	return Resolved{Snapshot: snapshot}, nil
}

func (e *resolutionEngine) CreateOrganization(ctx context.Context, sessionID int64, user *model.AppUser, orgName string) (*model.TenantSnapshot, error) {
	// Last-moment re-check before committing to a fresh id. Two concurrent
	// sign-ups for the same email can still both miss here; the seed writes
	// are keyed upserts, so the second bootstrap converges rather than
	// corrupting data.
	existingID, err := e.tenants.FindTenantIDByEmail(ctx, user.Email)
	if err == nil {
		slog.InfoContext(ctx, "organization already exists for email, completing seed",
			"tenant_id", existingID, "email", user.Email)
		return e.ensureSeed(ctx, sessionID, user, existingID)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("checking existing tenant: %w", err)
	}

	return e.bootstrap(ctx, sessionID, user, model.TenantID(id.NewString()), orgName)
}

func (e *resolutionEngine) JoinTenant(ctx context.Context, sessionID int64, user *model.AppUser, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	if _, err := e.tenants.GetRef(ctx, tenantID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("loading tenant: %w", err)
	}

	first, last := splitName(user.Name)
	employee := &model.Employee{
		ID:             id.NewString(),
		TenantID:       tenantID,
		FirstName:      first,
		LastName:       last,
		Email:          user.Email,
		Role:           "staff",
		EmploymentType: model.EmploymentFullTime,
		Status:         model.EmployeeStatusOnboarding,
		JoinDate:       time.Now(),
	}
	if err := e.employees.Upsert(ctx, employee); err != nil {
		return nil, fmt.Errorf("writing employee record: %w", err)
	}

	e.persistLinkage(ctx, sessionID, user, tenantID)
	e.snapshots.Invalidate(ctx, tenantID)

	snapshot, err := e.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("loading tenant snapshot: %w", err)
	}
	return snapshot, nil
}

func (e *resolutionEngine) RecoverOrphan(ctx context.Context, sessionID int64, user *model.AppUser, orgName string) (*model.TenantSnapshot, error) {
	staleID := user.TenantID
	snapshot, err := e.bootstrap(ctx, sessionID, user, model.TenantID(id.NewString()), orgName)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "recovered orphaned linkage",
		"identity_id", user.ID, "stale_tenant_id", staleID, "tenant_id", snapshot.Tenant.ID)
	return snapshot, nil
}

// bootstrap writes the seed for a brand-new tenant id and links the user to
// it. Write order is fixed: tenant, headquarters clinic, admin employee.
// There is no rollback on partial failure; every write is an upsert keyed by
// id or email, so a retry through CreateOrganization finishes the seed.
func (e *resolutionEngine) bootstrap(ctx context.Context, sessionID int64, user *model.AppUser, tenantID model.TenantID, orgName string) (*model.TenantSnapshot, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Operation: logger.Ptr("bootstrap"),
		TenantID:  logger.Ptr(tenantID.String()),
	})

	if orgName == "" {
		orgName = defaultOrgName(user)
	}

	tenant := &model.Tenant{
		ID:         tenantID,
		Name:       orgName,
		Plan:       model.TenantPlanFree,
		Status:     model.TenantStatusActive,
		OwnerEmail: user.Email,
		Governance: defaultGovernance(),
	}
	if err := e.tenants.Upsert(ctx, tenant); err != nil {
		return nil, fmt.Errorf("writing tenant record: %w", err)
	}

	return e.ensureSeed(ctx, sessionID, user, tenantID)
}

// ensureSeed makes the headquarters clinic and the owner's admin employee
// exist under the tenant, creating only what is missing, then persists the
// linkage and returns the fresh snapshot.
func (e *resolutionEngine) ensureSeed(ctx context.Context, sessionID int64, user *model.AppUser, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	clinics, err := e.clinics.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing clinics: %w", err)
	}

	var hq model.Clinic
	if len(clinics) > 0 {
		hq = clinics[0]
	} else {
		ref, err := e.tenants.GetRef(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("loading tenant: %w", err)
		}
		hq = model.Clinic{
			ID:       id.NewString(),
			TenantID: tenantID,
			Name:     ref.Name + " HQ",
			Type:     model.ClinicTypeHQ,
			Chairs:   1,
		}
		if err := e.clinics.Upsert(ctx, &hq); err != nil {
			return nil, fmt.Errorf("writing clinic record: %w", err)
		}
	}

	employees, err := e.employees.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	if !hasEmployeeEmail(employees, user.Email) {
		first, last := splitName(user.Name)
		admin := &model.Employee{
			ID:             id.NewString(),
			TenantID:       tenantID,
			ClinicID:       &hq.ID,
			FirstName:      first,
			LastName:       last,
			Email:          user.Email,
			Role:           model.EmployeeRoleAdmin,
			EmploymentType: model.EmploymentFullTime,
			Status:         model.EmployeeStatusActive,
			JoinDate:       time.Now(),
		}
		if err := e.employees.Upsert(ctx, admin); err != nil {
			return nil, fmt.Errorf("writing employee record: %w", err)
		}
	}

	e.persistLinkage(ctx, sessionID, user, tenantID)
	e.snapshots.Invalidate(ctx, tenantID)

	snapshot, err := e.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("loading tenant snapshot: %w", err)
	}
	return snapshot, nil
}

// persistLinkage caches the resolved tenant id on the in-memory user, the
// session row and the provider metadata. The session and provider writes are
// best effort; the next pending resolution repeats the email lookup if they
// are lost.
func (e *resolutionEngine) persistLinkage(ctx context.Context, sessionID int64, user *model.AppUser, tenantID model.TenantID) {
	user.TenantID = tenantID

	if sessionID != 0 {
		if err := e.sessions.UpdateTenantLinkage(ctx, sessionID, tenantID); err != nil {
			slog.WarnContext(ctx, "failed to cache tenant linkage on session",
				"error", err, "session_id", sessionID, "tenant_id", tenantID)
		}
	}
	if err := e.provider.SetTenantHint(ctx, user.ID, tenantID.String()); err != nil {
		slog.WarnContext(ctx, "failed to cache tenant linkage on identity",
			"error", err, "identity_id", user.ID, "tenant_id", tenantID)
	}
}

// verifySnapshot confirms a cached tenant linkage against the store, skipping
// the cache on the read so a tenant deleted out-of-band orphans the linkage
// immediately instead of after the cache TTL lapses.
func (e *resolutionEngine) verifySnapshot(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	snapshot, err := e.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			e.snapshots.Invalidate(ctx, tenantID)
		}
		return nil, err
	}
	e.snapshots.Set(ctx, snapshot)
	return snapshot, nil
}

func (e *resolutionEngine) loadSnapshot(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	if snapshot, ok := e.snapshots.Get(ctx, tenantID); ok {
		return snapshot, nil
	}
	snapshot, err := e.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	e.snapshots.Set(ctx, snapshot)
	return snapshot, nil
}

func hasEmployeeEmail(employees []model.Employee, email string) bool {
	for _, emp := range employees {
		if strings.EqualFold(emp.Email, email) {
			return true
		}
	}
	return false
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func defaultOrgName(user *model.AppUser) string {
	if user.Name != "" {
		return user.Name + "'s Clinic"
	}
	return localPart(user.Email) + "'s Clinic"
}

func defaultGovernance() model.GovernanceConfig {
	return model.GovernanceConfig{
		Naming: []model.NamingRule{
			{
				Rule:    "Account IDs",
				Pattern: "{first}.{last}@{clinic-domain}",
				Example: "taro.yamada@example-dental.com",
			},
		},
		Security: []model.SecurityPolicy{
			{
				Title:   "Offboarding",
				Content: "Disable all system accounts on the employee's final working day.",
			},
		},
	}
}
