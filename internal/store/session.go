package store

import (
	"context"

	"chairside.app/console/core/db"
	"chairside.app/console/internal/model"
)

type sessionStore struct {
	dbtx db.DBTX
}

func (s *sessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	var session model.Session
	err := s.dbtx.QueryRow(ctx, `
		SELECT id, identity_id, email, name, role, tenant_id, created_at, expires_at
		FROM sessions WHERE id = $1 AND expires_at > now()`,
		id,
	).Scan(
		&session.ID, &session.IdentityID, &session.Email, &session.Name,
		&session.Role, &session.TenantID, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	return &session, nil
}

func (s *sessionStore) Create(ctx context.Context, session *model.Session) error {
	row := s.dbtx.QueryRow(ctx, `
		INSERT INTO sessions (id, identity_id, email, name, role, tenant_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		session.ID, session.IdentityID, session.Email, session.Name,
		string(session.Role), string(session.TenantID), session.ExpiresAt,
	)
	if err := row.Scan(&session.CreatedAt); err != nil {
		return mapErr(err)
	}
	return nil
}

func (s *sessionStore) UpdateTenantLinkage(ctx context.Context, id int64, tenantID model.TenantID) error {
	tag, err := s.dbtx.Exec(ctx,
		`UPDATE sessions SET tenant_id = $2 WHERE id = $1`,
		id, string(tenantID),
	)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *sessionStore) Delete(ctx context.Context, id int64) error {
	_, err := s.dbtx.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return mapErr(err)
}

func (s *sessionStore) DeleteExpired(ctx context.Context) error {
	_, err := s.dbtx.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	return mapErr(err)
}
