package service

import (
	"context"
	"errors"
	"fmt"

	"chairside.app/console/common/id"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/store"
)

// WorkspaceService is the write surface of one tenant's workspace. Every
// mutation goes through the gateway, so callers always get a notification
// message and the reloaded snapshot back.
type WorkspaceService interface {
	Snapshot(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error)
	// Preview returns the public id/name view backing invite links. It
	// requires no authentication.
	Preview(ctx context.Context, tenantID model.TenantID) (*model.TenantRef, error)

	UpsertClinic(ctx context.Context, tenantID model.TenantID, clinic *model.Clinic) (*MutationResult, error)
	DeleteClinic(ctx context.Context, tenantID model.TenantID, clinicID string) (*MutationResult, error)

	UpsertSystem(ctx context.Context, tenantID model.TenantID, system *model.System) (*MutationResult, error)
	DeleteSystem(ctx context.Context, tenantID model.TenantID, systemID string) (*MutationResult, error)
	// InstallPresets subscribes the tenant to catalog systems by preset name
	// during onboarding. Unknown names are skipped.
	InstallPresets(ctx context.Context, tenantID model.TenantID, names []string) (*MutationResult, error)

	UpsertEmployee(ctx context.Context, tenantID model.TenantID, employee *model.Employee) (*MutationResult, error)
	DeleteEmployee(ctx context.Context, tenantID model.TenantID, employeeID string) (*MutationResult, error)
	AssignSystems(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) (*MutationResult, error)

	UpdateGovernance(ctx context.Context, tenantID model.TenantID, governance model.GovernanceConfig) (*MutationResult, error)
}

type workspaceService struct {
	gateway   MutationGateway
	txRunner  TxRunner
	tenants   store.TenantStore
	clinics   store.ClinicStore
	employees store.EmployeeStore
	systems   store.SystemStore
	snapshots SnapshotCache
}

func NewWorkspaceService(
	gateway MutationGateway,
	txRunner TxRunner,
	tenants store.TenantStore,
	clinics store.ClinicStore,
	employees store.EmployeeStore,
	systems store.SystemStore,
	snapshots SnapshotCache,
) WorkspaceService {
	return &workspaceService{
		gateway:   gateway,
		txRunner:  txRunner,
		tenants:   tenants,
		clinics:   clinics,
		employees: employees,
		systems:   systems,
		snapshots: orNopCache(snapshots),
	}
}

func (s *workspaceService) Snapshot(ctx context.Context, tenantID model.TenantID) (*model.TenantSnapshot, error) {
	if snapshot, ok := s.snapshots.Get(ctx, tenantID); ok {
		return snapshot, nil
	}
	snapshot, err := s.tenants.GetSnapshot(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	s.snapshots.Set(ctx, snapshot)
	return snapshot, nil
}

func (s *workspaceService) Preview(ctx context.Context, tenantID model.TenantID) (*model.TenantRef, error) {
	ref, err := s.tenants.GetRef(ctx, tenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("loading tenant: %w", err)
	}
	return ref, nil
}

func (s *workspaceService) UpsertClinic(ctx context.Context, tenantID model.TenantID, clinic *model.Clinic) (*MutationResult, error) {
	clinic.TenantID = tenantID
	if clinic.ID == "" {
		clinic.ID = id.NewString()
	}
	return s.gateway.Apply(ctx, tenantID, "Clinic saved.", func(ctx context.Context) error {
		return s.clinics.Upsert(ctx, clinic)
	})
}

func (s *workspaceService) DeleteClinic(ctx context.Context, tenantID model.TenantID, clinicID string) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "Clinic removed.", func(ctx context.Context) error {
		return s.clinics.Delete(ctx, tenantID, clinicID)
	})
}

func (s *workspaceService) UpsertSystem(ctx context.Context, tenantID model.TenantID, system *model.System) (*MutationResult, error) {
	system.TenantID = tenantID
	if system.ID == "" {
		system.ID = id.NewString()
	}
	return s.gateway.Apply(ctx, tenantID, "System saved.", func(ctx context.Context) error {
		return s.systems.Upsert(ctx, system)
	})
}

func (s *workspaceService) DeleteSystem(ctx context.Context, tenantID model.TenantID, systemID string) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "System removed.", func(ctx context.Context) error {
		return s.systems.Delete(ctx, tenantID, systemID)
	})
}

func (s *workspaceService) InstallPresets(ctx context.Context, tenantID model.TenantID, names []string) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "Systems added.", func(ctx context.Context) error {
		// all presets land or none do
		return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
			for _, name := range names {
				preset, ok := lookupPreset(name)
				if !ok {
					continue
				}
				system := &model.System{
					ID:                 id.NewString(),
					TenantID:           tenantID,
					Name:               preset.Name,
					Category:           preset.Category,
					URL:                preset.URL,
					Status:             model.SystemStatusActive,
					BaseMonthlyCost:    preset.BaseMonthlyCost,
					MonthlyCostPerUser: preset.MonthlyCostPerUser,
				}
				if err := stores.Systems().Upsert(ctx, system); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (s *workspaceService) UpsertEmployee(ctx context.Context, tenantID model.TenantID, employee *model.Employee) (*MutationResult, error) {
	employee.TenantID = tenantID
	if employee.ID == "" {
		employee.ID = id.NewString()
	}
	return s.gateway.Apply(ctx, tenantID, "Employee saved.", func(ctx context.Context) error {
		// the row write and the assignment sync must land together
		return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
			return stores.Employees().Upsert(ctx, employee)
		})
	})
}

func (s *workspaceService) DeleteEmployee(ctx context.Context, tenantID model.TenantID, employeeID string) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "Employee removed.", func(ctx context.Context) error {
		return s.employees.Delete(ctx, tenantID, employeeID)
	})
}

func (s *workspaceService) AssignSystems(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "System assignments updated.", func(ctx context.Context) error {
		return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
			return stores.Employees().SetAssignedSystems(ctx, tenantID, employeeID, systemIDs)
		})
	})
}

func (s *workspaceService) UpdateGovernance(ctx context.Context, tenantID model.TenantID, governance model.GovernanceConfig) (*MutationResult, error) {
	return s.gateway.Apply(ctx, tenantID, "Governance settings saved.", func(ctx context.Context) error {
		return s.tenants.UpdateGovernance(ctx, tenantID, governance)
	})
}
