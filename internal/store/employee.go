package store

import (
	"context"
	"fmt"

	"chairside.app/console/core/db"
	"chairside.app/console/internal/model"
)

type employeeStore struct {
	dbtx db.DBTX
}

func (s *employeeStore) Upsert(ctx context.Context, employee *model.Employee) error {
	row := s.dbtx.QueryRow(ctx, `
		INSERT INTO employees (id, tenant_id, clinic_id, first_name, last_name,
			email, role, employment_type, status, join_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			clinic_id = EXCLUDED.clinic_id,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			role = EXCLUDED.role,
			employment_type = EXCLUDED.employment_type,
			status = EXCLUDED.status,
			join_date = EXCLUDED.join_date
		RETURNING created_at`,
		employee.ID, string(employee.TenantID), employee.ClinicID,
		employee.FirstName, employee.LastName, employee.Email, employee.Role,
		string(employee.EmploymentType), string(employee.Status), employee.JoinDate,
	)
	if err := row.Scan(&employee.CreatedAt); err != nil {
		return mapErr(err)
	}

	if employee.AssignedSystems != nil {
		if err := s.SetAssignedSystems(ctx, employee.TenantID, employee.ID, employee.AssignedSystems); err != nil {
			return fmt.Errorf("setting system assignments: %w", err)
		}
	}
	return nil
}

func (s *employeeStore) Delete(ctx context.Context, tenantID model.TenantID, id string) error {
	tag, err := s.dbtx.Exec(ctx,
		`DELETE FROM employees WHERE tenant_id = $1 AND id = $2`,
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

func (s *employeeStore) SetAssignedSystems(ctx context.Context, tenantID model.TenantID, employeeID string, systemIDs []string) error {
	if _, err := s.dbtx.Exec(ctx,
		`DELETE FROM employee_systems WHERE employee_id = $1`,
		employeeID,
	); err != nil {
		return mapErr(err)
	}

	for _, systemID := range systemIDs {
		if _, err := s.dbtx.Exec(ctx, `
			INSERT INTO employee_systems (employee_id, system_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			employeeID, systemID,
		); err != nil {
			return mapErr(err)
		}
	}
	return nil
}

func (s *employeeStore) ListByTenant(ctx context.Context, tenantID model.TenantID) ([]model.Employee, error) {
	rows, err := s.dbtx.Query(ctx, `
		SELECT e.id, e.tenant_id, e.clinic_id, e.first_name, e.last_name,
		       e.email, e.role, e.employment_type, e.status, e.join_date, e.created_at,
		       COALESCE(array_agg(es.system_id) FILTER (WHERE es.system_id IS NOT NULL), '{}')
		FROM employees e
		LEFT JOIN employee_systems es ON es.employee_id = e.id
		WHERE e.tenant_id = $1
		GROUP BY e.id
		ORDER BY e.created_at`,
		string(tenantID),
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	var employees []model.Employee
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(
			&e.ID, &e.TenantID, &e.ClinicID, &e.FirstName, &e.LastName,
			&e.Email, &e.Role, &e.EmploymentType, &e.Status, &e.JoinDate,
			&e.CreatedAt, &e.AssignedSystems,
		); err != nil {
			return nil, mapErr(err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
