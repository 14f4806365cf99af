package service

import (
	"strings"

	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
)

// SessionResolver derives the application user from an identity provider
// principal. It is pure: no store reads, no writes, same input same output.
type SessionResolver interface {
	Resolve(principal *identity.Principal) *model.AppUser
}

type sessionResolver struct {
	superuserEmail string
}

func NewSessionResolver(superuserEmail string) SessionResolver {
	return &sessionResolver{superuserEmail: superuserEmail}
}

func (r *sessionResolver) Resolve(principal *identity.Principal) *model.AppUser {
	user := &model.AppUser{
		ID:       principal.ID,
		Email:    principal.Email,
		Name:     principal.Name,
		Role:     model.RoleClientAdmin,
		TenantID: model.TenantPending,
	}

	if user.Name == "" {
		user.Name = localPart(principal.Email)
	}
	if strings.EqualFold(principal.Email, r.superuserEmail) {
		user.Role = model.RoleSuperAdmin
	}
	if hint := model.TenantID(principal.TenantIDHint); !hint.IsPending() {
		user.TenantID = hint
	}

	return user
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
