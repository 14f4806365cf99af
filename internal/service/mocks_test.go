package service_test

import (
	"context"

	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"chairside.app/console/internal/store"
)

// mockTxRunner passes the configured stores straight through; there is no
// real transaction in unit tests.
type mockTxRunner struct {
	employees *mockEmployeeStore
	systems   *mockSystemStore
}

func (m *mockTxRunner) WithTx(_ context.Context, fn func(stores service.StoreProvider) error) error {
	return fn(m)
}

func (m *mockTxRunner) Employees() store.EmployeeStore {
	return m.employees
}

func (m *mockTxRunner) Systems() store.SystemStore {
	return m.systems
}

type mockTenantStore struct {
	findTenantIDByEmailFn func(ctx context.Context, email string) (model.TenantID, error)
	getSnapshotFn         func(ctx context.Context, id model.TenantID) (*model.TenantSnapshot, error)
	getRefFn              func(ctx context.Context, id model.TenantID) (*model.TenantRef, error)
	upsertFn              func(ctx context.Context, tenant *model.Tenant) error
	updatePlanFn          func(ctx context.Context, id model.TenantID, plan model.TenantPlan) error
	updateStatusFn        func(ctx context.Context, id model.TenantID, status model.TenantStatus) error
	updateGovernanceFn    func(ctx context.Context, id model.TenantID, governance model.GovernanceConfig) error
	listFn                func(ctx context.Context) ([]model.TenantOverview, error)
	deleteFn              func(ctx context.Context, id model.TenantID) error
}

func (m *mockTenantStore) FindTenantIDByEmail(ctx context.Context, email string) (model.TenantID, error) {
	if m.findTenantIDByEmailFn != nil {
		return m.findTenantIDByEmailFn(ctx, email)
	}
	return "", nil
}

func (m *mockTenantStore) GetSnapshot(ctx context.Context, id model.TenantID) (*model.TenantSnapshot, error) {
	if m.getSnapshotFn != nil {
		return m.getSnapshotFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantStore) GetRef(ctx context.Context, id model.TenantID) (*model.TenantRef, error) {
	if m.getRefFn != nil {
		return m.getRefFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantStore) Upsert(ctx context.Context, tenant *model.Tenant) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, tenant)
	}
	return nil
}

func (m *mockTenantStore) UpdatePlan(ctx context.Context, id model.TenantID, plan model.TenantPlan) error {
	if m.updatePlanFn != nil {
		return m.updatePlanFn(ctx, id, plan)
	}
	return nil
}

func (m *mockTenantStore) UpdateStatus(ctx context.Context, id model.TenantID, status model.TenantStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockTenantStore) UpdateGovernance(ctx context.Context, id model.TenantID, governance model.GovernanceConfig) error {
	if m.updateGovernanceFn != nil {
		return m.updateGovernanceFn(ctx, id, governance)
	}
	return nil
}

func (m *mockTenantStore) List(ctx context.Context) ([]model.TenantOverview, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockTenantStore) Delete(ctx context.Context, id model.TenantID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockClinicStore struct {
	upsertFn       func(ctx context.Context, clinic *model.Clinic) error
	deleteFn       func(ctx context.Context, tenantID model.TenantID, id string) error
	listByTenantFn func(ctx context.Context, tenantID model.TenantID) ([]model.Clinic, error)
}

func (m *mockClinicStore) Upsert(ctx context.Context, clinic *model.Clinic) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, clinic)
	}
	return nil
}

func (m *mockClinicStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tenantID, id)
	}
	return nil
}

func (m *mockClinicStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Clinic, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, tenantID)
	}
	return nil, nil
}

type mockEmployeeStore struct {
	upsertFn             func(ctx context.Context, employee *model.Employee) error
	deleteFn             func(ctx context.Context, tenantID model.TenantID, id string) error
	setAssignedSystemsFn func(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) error
	listByTenantFn       func(ctx context.Context, tenantID model.TenantID) ([]model.Employee, error)
}

func (m *mockEmployeeStore) Upsert(ctx context.Context, employee *model.Employee) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, employee)
	}
	return nil
}

func (m *mockEmployeeStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tenantID, id)
	}
	return nil
}

func (m *mockEmployeeStore) SetAssignedSystems(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) error {
	if m.setAssignedSystemsFn != nil {
		return m.setAssignedSystemsFn(ctx, tenantID, employeeID, systemIDs)
	}
	return nil
}

func (m *mockEmployeeStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Employee, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, tenantID)
	}
	return nil, nil
}

type mockSystemStore struct {
	upsertFn       func(ctx context.Context, system *model.System) error
	deleteFn       func(ctx context.Context, tenantID model.TenantID, id string) error
	listByTenantFn func(ctx context.Context, tenantID model.TenantID) ([]model.System, error)
}

func (m *mockSystemStore) Upsert(ctx context.Context, system *model.System) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, system)
	}
	return nil
}

func (m *mockSystemStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tenantID, id)
	}
	return nil
}

func (m *mockSystemStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.System, error) {
	if m.listByTenantFn != nil {
		return m.listByTenantFn(ctx, tenantID)
	}
	return nil, nil
}

type mockSessionStore struct {
	getValidFn            func(ctx context.Context, id int64) (*model.Session, error)
	createFn              func(ctx context.Context, session *model.Session) error
	updateTenantLinkageFn func(ctx context.Context, id int64, tenantID model.TenantID) error
	deleteFn              func(ctx context.Context, id int64) error
	deleteExpiredFn       func(ctx context.Context) error
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) UpdateTenantLinkage(ctx context.Context, id int64, tenantID model.TenantID) error {
	if m.updateTenantLinkageFn != nil {
		return m.updateTenantLinkageFn(ctx, id, tenantID)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

type mockIdentityProvider struct {
	signInFn        func(ctx context.Context, email, password string) (*identity.Principal, error)
	signUpFn        func(ctx context.Context, email, password, tenantHint string) (*identity.Principal, error)
	setTenantHintFn func(ctx context.Context, identityID string, tenantID string) error
	deleteByEmailFn func(ctx context.Context, email string) error
}

func (m *mockIdentityProvider) SignIn(ctx context.Context, email, password string) (*identity.Principal, error) {
	if m.signInFn != nil {
		return m.signInFn(ctx, email, password)
	}
	return nil, nil
}

func (m *mockIdentityProvider) SignUp(ctx context.Context, email, password, tenantHint string) (*identity.Principal, error) {
	if m.signUpFn != nil {
		return m.signUpFn(ctx, email, password, tenantHint)
	}
	return nil, nil
}

func (m *mockIdentityProvider) SetTenantHint(ctx context.Context, identityID string, tenantID string) error {
	if m.setTenantHintFn != nil {
		return m.setTenantHintFn(ctx, identityID, tenantID)
	}
	return nil
}

func (m *mockIdentityProvider) DeleteByEmail(ctx context.Context, email string) error {
	if m.deleteByEmailFn != nil {
		return m.deleteByEmailFn(ctx, email)
	}
	return nil
}

// mockSnapshotCache is an in-memory stand-in for the redis snapshot cache.
type mockSnapshotCache struct {
	entries     map[model.TenantID]*model.TenantSnapshot
	invalidated []model.TenantID
}

func newMockSnapshotCache() *mockSnapshotCache {
	return &mockSnapshotCache{entries: map[model.TenantID]*model.TenantSnapshot{}}
}

func (m *mockSnapshotCache) Get(_ context.Context, tenantID model.TenantID) (*model.TenantSnapshot, bool) {
	snapshot, ok := m.entries[tenantID]
	return snapshot, ok
}

func (m *mockSnapshotCache) Set(_ context.Context, snapshot *model.TenantSnapshot) {
	m.entries[snapshot.Tenant.ID] = snapshot
}

func (m *mockSnapshotCache) Invalidate(_ context.Context, tenantID model.TenantID) {
	m.invalidated = append(m.invalidated, tenantID)
	delete(m.entries, tenantID)
}
