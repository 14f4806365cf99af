package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"chairside.app/console/core/config"
	"github.com/workos/workos-go/v6/pkg/usermanagement"
	"github.com/workos/workos-go/v6/pkg/workos_errors"
)

const tenantHintKey = "tenant_id"

type workosProvider struct {
	clientID string
}

// NewWorkOSProvider builds a Provider backed by WorkOS user management
// password authentication.
func NewWorkOSProvider(cfg config.WorkOSConfig) Provider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workosProvider{clientID: cfg.ClientID}
}

func (p *workosProvider) SignIn(ctx context.Context, email, password string) (*Principal, error) {
	resp, err := usermanagement.AuthenticateWithPassword(ctx, usermanagement.AuthenticateWithPasswordOpts{
		ClientID: p.clientID,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if classified := classify(err); classified != nil {
			return nil, classified
		}
		return nil, fmt.Errorf("authenticating with password: %w", err)
	}
	return principalFrom(resp.User), nil
}

func (p *workosProvider) SignUp(ctx context.Context, email, password, tenantHint string) (*Principal, error) {
	opts := usermanagement.CreateUserOpts{
		Email:    email,
		Password: password,
	}
	if tenantHint != "" {
		opts.Metadata = map[string]string{tenantHintKey: tenantHint}
	}

	user, err := usermanagement.CreateUser(ctx, opts)
	if err != nil {
		if classified := classify(err); classified != nil {
			return nil, classified
		}
		return nil, fmt.Errorf("creating identity: %w", err)
	}
	return principalFrom(user), nil
}

func (p *workosProvider) SetTenantHint(ctx context.Context, identityID string, tenantID string) error {
	_, err := usermanagement.UpdateUser(ctx, usermanagement.UpdateUserOpts{
		User:     identityID,
		Metadata: map[string]*string{tenantHintKey: &tenantID},
	})
	if err != nil {
		return fmt.Errorf("updating tenant hint: %w", err)
	}
	return nil
}

func (p *workosProvider) DeleteByEmail(ctx context.Context, email string) error {
	users, err := usermanagement.ListUsers(ctx, usermanagement.ListUsersOpts{Email: email})
	if err != nil {
		return fmt.Errorf("listing identities: %w", err)
	}
	if len(users.Data) == 0 {
		return ErrIdentityNotFound
	}

	for _, u := range users.Data {
		if err := usermanagement.DeleteUser(ctx, usermanagement.DeleteUserOpts{User: u.ID}); err != nil {
			return fmt.Errorf("deleting identity %s: %w", u.ID, err)
		}
		slog.InfoContext(ctx, "identity deleted", "identity_id", u.ID, "email", email)
	}
	return nil
}

func principalFrom(user usermanagement.User) *Principal {
	return &Principal{
		ID:           user.ID,
		Email:        user.Email,
		Name:         buildName(user),
		TenantIDHint: user.Metadata[tenantHintKey],
	}
}

func buildName(user usermanagement.User) string {
	switch {
	case user.FirstName != "" && user.LastName != "":
		return user.FirstName + " " + user.LastName
	case user.FirstName != "":
		return user.FirstName
	case user.LastName != "":
		return user.LastName
	}
	return ""
}

// classify maps provider HTTP errors onto the package's sentinel taxonomy.
// Anything unclassified (timeouts, 5xx) is left for the caller to wrap.
func classify(err error) error {
	var httpErr workos_errors.HTTPError
	if !errors.As(err, &httpErr) {
		return nil
	}

	switch {
	case httpErr.Code == http.StatusUnauthorized,
		strings.Contains(httpErr.ErrorCode, "invalid_credentials"),
		strings.Contains(httpErr.Message, "invalid_credentials"):
		return ErrInvalidCredentials
	case httpErr.Code == http.StatusConflict,
		strings.Contains(httpErr.ErrorCode, "email_not_available"),
		strings.Contains(httpErr.Message, "already"):
		return ErrAlreadyRegistered
	}
	return nil
}
