package store

import (
	"context"

	"chairside.app/console/core/db"
	"chairside.app/console/internal/model"
)

type systemStore struct {
	dbtx db.DBTX
}

func (s *systemStore) Upsert(ctx context.Context, system *model.System) error {
	issues := system.Issues
	if issues == nil {
		issues = []string{}
	}

	row := s.dbtx.QueryRow(ctx, `
		INSERT INTO systems (id, tenant_id, name, category, url, status,
			base_monthly_cost, monthly_cost_per_user, renewal_date,
			admin_owner, vendor_contact, issues, contract_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			url = EXCLUDED.url,
			status = EXCLUDED.status,
			base_monthly_cost = EXCLUDED.base_monthly_cost,
			monthly_cost_per_user = EXCLUDED.monthly_cost_per_user,
			renewal_date = EXCLUDED.renewal_date,
			admin_owner = EXCLUDED.admin_owner,
			vendor_contact = EXCLUDED.vendor_contact,
			issues = EXCLUDED.issues,
			contract_url = EXCLUDED.contract_url
		RETURNING created_at`,
		system.ID, string(system.TenantID), system.Name, system.Category,
		system.URL, string(system.Status), system.BaseMonthlyCost,
		system.MonthlyCostPerUser, system.RenewalDate, system.AdminOwner,
		system.VendorContact, issues, system.ContractURL,
	)
	if err := row.Scan(&system.CreatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *systemStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	tag, err := s.dbtx.Exec(ctx,
		`DELETE FROM systems WHERE tenant_id = $1 AND id = $2`,
		string(tenantID), id,
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *systemStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.System, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT id, tenant_id, name, category, url, status,
		       base_monthly_cost, monthly_cost_per_user, renewal_date,
		       admin_owner, vendor_contact, issues, contract_url, created_at
		FROM systems WHERE tenant_id = $1 ORDER BY created_at`,
		string(tenantID),
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var systems []model.System
	for rows.Next() {
		var sys model.System
		if err := rows.Scan(
			&sys.ID, &sys.TenantID, &sys.Name, &sys.Category, &sys.URL, &sys.Status,
			&sys.BaseMonthlyCost, &sys.MonthlyCostPerUser, &sys.RenewalDate,
			&sys.AdminOwner, &sys.VendorContact, &sys.Issues, &sys.ContractURL,
			&sys.CreatedAt,
		); err != nil {
			return nil, mapErr(err)
		}
		systems = append(systems, sys)
	}
	return systems, rows.Err()
}
