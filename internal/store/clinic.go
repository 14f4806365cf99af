package store

import (
	"context"

	"chairside.app/console/core/db"
	"chairside.app/console/internal/model"
)

type clinicStore struct {
	dbtx db.DBTX
}

func (s *clinicStore) Upsert(ctx context.Context, clinic *model.Clinic) error {
	row := s.dbtx.QueryRow(ctx, `
		INSERT INTO clinics (id, tenant_id, name, type, address, chairs, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			address = EXCLUDED.address,
			chairs = EXCLUDED.chairs,
			phone = EXCLUDED.phone
		RETURNING created_at`,
		clinic.ID, string(clinic.TenantID), clinic.Name, string(clinic.Type),
		clinic.Address, clinic.Chairs, clinic.Phone,
	)
	if err := row.Scan(&clinic.CreatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *clinicStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	tag, err := s.dbtx.Exec(ctx,
		`DELETE FROM clinics WHERE tenant_id = $1 AND id = $2`,
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

func (s *clinicStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Clinic, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT id, tenant_id, name, type, address, chairs, phone, created_at
		FROM clinics WHERE tenant_id = $1 ORDER BY created_at`,
		string(tenantID),
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var clinics []model.Clinic
	for rows.Next() {
		var c model.Clinic
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.Name, &c.Type, &c.Address, &c.Chairs, &c.Phone, &c.CreatedAt,
		); err != nil {
			return nil, mapErr(err)
		}
		clinics = append(clinics, c)
	}
	return clinics, rows.Err()
}
