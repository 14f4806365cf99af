package store

import (
	"errors"

	"chairside.app/console/core/db"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Stores bundles the typed stores over one DBTX (pool or transaction).
type Stores struct {
	dbtx db.DBTX
}

func NewStores(dbtx db.DBTX) *Stores {
	return &Stores{dbtx: dbtx}
}

func (s *Stores) Tenants() TenantStore {
	return &tenantStore{dbtx: s.dbtx}
}

func (s *Stores) Clinics() ClinicStore {
	return &clinicStore{dbtx: s.dbtx}
}

func (s *Stores) Employees() EmployeeStore {
	return &employeeStore{dbtx: s.dbtx}
}

func (s *Stores) Systems() SystemStore {
	return &systemStore{dbtx: s.dbtx}
}

func (s *Stores) Sessions() SessionStore {
	return &sessionStore{dbtx: s.dbtx}
}

const pgUndefinedTable = "42P01"

// mapErr translates driver errors into the package sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUndefinedTable {
		return ErrSchemaMissing
	}
	return err
}
