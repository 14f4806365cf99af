package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chairside.app/console/core/db"
	"chairside.app/console/internal/model"
	"github.com/jackc/pgx/v5"
)

type tenantStore struct {
	dbtx db.DBTX
}

func (s *tenantStore) FindTenantIDByEmail(ctx context.Context, email string) (model.TenantID, error) {
	var id string

	// Employee rows cover both the invite path and the bootstrap seed.
	err := s.dbtx.QueryRow(ctx,
		`SELECT tenant_id FROM employees WHERE lower(email) = lower($1) LIMIT 1`,
		email,
	).Scan(&id)
	if err == nil {
		return model.TenantID(id), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", mapErr(err)
	}

	err = s.dbtx.QueryRow(ctx,
		`SELECT id FROM tenants WHERE lower(owner_email) = lower($1) LIMIT 1`,
		email,
	).Scan(&id)
	if err != nil {
		return "", mapErr(err)
	}
	return model.TenantID(id), nil
}

func (s *tenantStore) GetSnapshot(ctx context.Context, id model.TenantID) (*model.TenantSnapshot, error) {
	tenant, err := s.getTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	clinics, err := (&clinicStore{dbtx: s.dbtx}).ListByTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading clinics: %w", err)
	}

	systems, err := (&systemStore{dbtx: s.dbtx}).ListByTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading systems: %w", err)
	}

	employees, err := (&employeeStore{dbtx: s.dbtx}).ListByTenant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}

	return &model.TenantSnapshot{
		Tenant:    *tenant,
		Clinics:   clinics,
		Systems:   systems,
		Employees: employees,
	}, nil
}

func (s *tenantStore) GetRef(ctx context.Context, id model.TenantID) (*model.TenantRef, error) {
	var ref model.TenantRef
	err := s.dbtx.QueryRow(ctx,
		`SELECT id, name FROM tenants WHERE id = $1`,
		string(id),
	).Scan(&ref.ID, &ref.Name)
	if err != nil {
		return nil, mapErr(err)
	}
	return &ref, nil
}

func (s *tenantStore) Upsert(ctx context.Context, tenant *model.Tenant) error {
	governance, err := json.Marshal(tenant.Governance)
	if err != nil {
		return fmt.Errorf("encoding governance: %w", err)
	}

	row := s.dbtx.QueryRow(ctx, `
		INSERT INTO tenants (id, name, plan, status, owner_email, governance)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			plan = EXCLUDED.plan,
			status = EXCLUDED.status,
			owner_email = EXCLUDED.owner_email,
			governance = EXCLUDED.governance,
			updated_at = now()
		RETURNING created_at, updated_at`,
		string(tenant.ID), tenant.Name, string(tenant.Plan), string(tenant.Status),
		tenant.OwnerEmail, governance,
	)
	if err := row.Scan(&tenant.CreatedAt, &tenant.UpdatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *tenantStore) UpdatePlan(ctx context.Context, id model.TenantID, plan model.TenantPlan) error {
	return s.updateColumn(ctx, id, `plan`, string(plan))
}

func (s *tenantStore) UpdateStatus(ctx context.Context, id model.TenantID, status model.TenantStatus) error {
	return s.updateColumn(ctx, id, `status`, string(status))
}

func (s *tenantStore) UpdateGovernance(ctx context.Context, id model.TenantID, governance model.GovernanceConfig) error {
	encoded, err := json.Marshal(governance)
	if err != nil {
		return fmt.Errorf("encoding governance: %w", err)
	}
	tag, err := s.dbtx.Exec(ctx,
		`UPDATE tenants SET governance = $2, updated_at = now() WHERE id = $1`,
		string(id), encoded,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *tenantStore) List(ctx context.Context) ([]model.TenantOverview, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT t.id, t.name, t.plan, t.status, t.owner_email, t.governance,
		       t.created_at, t.updated_at,
		       (SELECT count(*) FROM clinics c WHERE c.tenant_id = t.id),
		       (SELECT count(*) FROM employees e WHERE e.tenant_id = t.id),
		       (SELECT count(*) FROM systems sy WHERE sy.tenant_id = t.id)
		FROM tenants t
		ORDER BY t.created_at`)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var overviews []model.TenantOverview
	for rows.Next() {
		var o model.TenantOverview
		var governance []byte
		if err := rows.Scan(
			&o.Tenant.ID, &o.Tenant.Name, &o.Tenant.Plan, &o.Tenant.Status,
			&o.Tenant.OwnerEmail, &governance, &o.Tenant.CreatedAt, &o.Tenant.UpdatedAt,
			&o.ClinicCount, &o.EmployeeCount, &o.SystemCount,
		); err != nil {
			return nil, mapErr(err)
		}
		if err := json.Unmarshal(governance, &o.Tenant.Governance); err != nil {
			return nil, fmt.Errorf("decoding governance: %w", err)
		}
		overviews = append(overviews, o)
	}
	return overviews, rows.Err()
}

func (s *tenantStore) Delete(ctx context.Context, id model.TenantID) error {
	// Child tables declare ON DELETE CASCADE; one statement removes the graph.
	tag, err := s.dbtx.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, string(id))
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *tenantStore) getTenant(ctx context.Context, id model.TenantID) (*model.Tenant, error) {
	var tenant model.Tenant
	var governance []byte
	err := s.dbtx.QueryRow(ctx, `
		SELECT id, name, plan, status, owner_email, governance, created_at, updated_at
		FROM tenants WHERE id = $1`,
		string(id),
	).Scan(
		&tenant.ID, &tenant.Name, &tenant.Plan, &tenant.Status,
		&tenant.OwnerEmail, &governance, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := json.Unmarshal(governance, &tenant.Governance); err != nil {
		return nil, fmt.Errorf("decoding governance: %w", err)
	}
	return &tenant, nil
}

func (s *tenantStore) updateColumn(ctx context.Context, id model.TenantID, column, value string) error {
	tag, err := s.dbtx.Exec(ctx,
		`UPDATE tenants SET `+column+` = $2, updated_at = now() WHERE id = $1`,
		string(id), value,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
