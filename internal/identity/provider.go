package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials is returned when the provider rejects the
	// supplied email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyRegistered is returned when sign-up targets an email the
	// provider already knows (the "ghost user" case).
	ErrAlreadyRegistered = errors.New("email already registered")

	// ErrIdentityNotFound is returned when no identity exists for an email.
	ErrIdentityNotFound = errors.New("identity not found")
)

// Principal is the authenticated external identity, read-only to this system.
// TenantIDHint carries the cached tenant linkage stored in provider user
// metadata; it may be stale or empty.
type Principal struct {
	ID           string
	Email        string
	Name         string
	TenantIDHint string
}

// Provider wraps the external auth service. All tenant data lives elsewhere;
// the provider only owns credentials and the linkage hint.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Principal, error)
	SignUp(ctx context.Context, email, password, tenantHint string) (*Principal, error)
	// SetTenantHint writes the resolved tenant id back into provider user
	// metadata so future sessions skip the email lookup. Best effort from the
	// caller's point of view.
	SetTenantHint(ctx context.Context, identityID string, tenantID string) error
	// DeleteByEmail removes the identity during tenant deletion. Callers
	// treat failures as non-fatal.
	DeleteByEmail(ctx context.Context, email string) error
}
