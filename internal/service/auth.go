package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"chairside.app/console/common/id"
	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/store"
)

const sessionTTL = 7 * 24 * time.Hour

var (
	// ErrInvalidCredentials is returned on a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAlreadyRegistered is returned when sign-up hits an existing identity
	// whose password does not match. The caller should sign in instead.
	ErrAlreadyRegistered = errors.New("account already exists, sign in instead")

	// ErrSessionExpired is returned when a session id is unknown or past its
	// expiry.
	ErrSessionExpired = errors.New("session expired")
)

// AuthResult is what a successful sign-in or sign-up hands back: the derived
// user, the server-side session and the workspace resolution.
type AuthResult struct {
	User       *model.AppUser
	Session    *model.Session
	Resolution Resolution
}

// SignUpParams carries the optional intents of a sign-up: create a named
// organization, or join an existing tenant through an invite link. Both
// empty means the user decides after landing.
type SignUpParams struct {
	Email            string
	Password         string
	Name             string
	OrganizationName string
	InviteTenantID   model.TenantID
}

type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	// SignUp registers a new identity. When the email is already registered,
	// it attempts a sign-in with the supplied password; a match resolves or
	// recovers the existing account, a mismatch returns ErrAlreadyRegistered.
	SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error)
	Logout(ctx context.Context, sessionID int64) error
	// ValidateSession rebuilds the AppUser from a live session row.
	ValidateSession(ctx context.Context, sessionID int64) (*model.AppUser, error)
}

type authService struct {
	provider identity.Provider
	resolver SessionResolver
	engine   ResolutionEngine
	sessions store.SessionStore
}

func NewAuthService(provider identity.Provider, resolver SessionResolver, engine ResolutionEngine, sessions store.SessionStore) AuthService {
	return &authService{
		provider: provider,
		resolver: resolver,
		engine:   engine,
		sessions: sessions,
	}
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	principal, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) || errors.Is(err, identity.ErrIdentityNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	user := s.resolver.Resolve(principal)
	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	resolution, err := s.engine.Resolve(ctx, session.ID, user)
	if err != nil {
		return nil, err
	}
	// the engine may have resolved a pending linkage
	session.TenantID = user.TenantID

	return &AuthResult{User: user, Session: session, Resolution: resolution}, nil
}

func (s *authService) SignUp(ctx context.Context, params SignUpParams) (*AuthResult, error) {
	principal, err := s.provider.SignUp(ctx, params.Email, params.Password, string(params.InviteTenantID))
	if errors.Is(err, identity.ErrAlreadyRegistered) {
		return s.recoverExisting(ctx, params)
	}
	if err != nil {
		return nil, fmt.Errorf("registering identity: %w", err)
	}
	if params.Name != "" {
		principal.Name = params.Name
	}

	user := s.resolver.Resolve(principal)
	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	resolution, err := s.resolveIntent(ctx, session.ID, user, params)
	if err != nil {
		return nil, err
	}
	session.TenantID = user.TenantID

	return &AuthResult{User: user, Session: session, Resolution: resolution}, nil
}

// recoverExisting handles sign-up against an email the provider already
// knows. With matching credentials this is a disguised sign-in: an intact
// account resolves normally, while an account whose tenant is gone or was
// never created gets a fresh bootstrap instead of an error.
func (s *authService) recoverExisting(ctx context.Context, params SignUpParams) (*AuthResult, error) {
	principal, err := s.provider.SignIn(ctx, params.Email, params.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("authenticating existing identity: %w", err)
	}

	slog.InfoContext(ctx, "sign-up matched existing identity, signing in",
		"identity_id", principal.ID)

	user := s.resolver.Resolve(principal)
	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, err
	}

	resolution, err := s.engine.Resolve(ctx, session.ID, user)
	if err != nil {
		return nil, err
	}

	switch resolution.(type) {
	case NoTenant, Orphaned:
		resolution, err = s.resolveIntent(ctx, session.ID, user, params)
		if err != nil {
			return nil, err
		}
	}

	// The user just proved ownership of the credentials, so a workspace that
	// is still missing or stale gets a fresh seed instead of a dead end.
	switch resolution.(type) {
	case NoTenant, Orphaned:
		snapshot, err := s.engine.CreateOrganization(ctx, session.ID, user, params.OrganizationName)
		if err != nil {
			return nil, err
		}
		resolution = Resolved{Snapshot: snapshot}
	}
	session.TenantID = user.TenantID

	return &AuthResult{User: user, Session: session, Resolution: resolution}, nil
}

// resolveIntent applies the sign-up intent for a user who does not resolve
// to an existing workspace on their own.
func (s *authService) resolveIntent(ctx context.Context, sessionID int64, user *model.AppUser, params SignUpParams) (Resolution, error) {
	switch {
	case params.InviteTenantID != "":
		snapshot, err := s.engine.JoinTenant(ctx, sessionID, user, params.InviteTenantID)
		if err != nil {
			return nil, err
		}
		return Resolved{Snapshot: snapshot}, nil
	case params.OrganizationName != "":
		snapshot, err := s.engine.CreateOrganization(ctx, sessionID, user, params.OrganizationName)
		if err != nil {
			return nil, err
		}
		return Resolved{Snapshot: snapshot}, nil
	default:
		return s.engine.Resolve(ctx, sessionID, user)
	}
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (*model.AppUser, error) {
	session, err := s.sessions.GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return session.User(), nil
}

func (s *authService) createSession(ctx context.Context, user *model.AppUser) (*model.Session, error) {
	session := &model.Session{
		ID:         id.New(),
		IdentityID: user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		TenantID:   user.TenantID,
		ExpiresAt:  time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return session, nil
}
