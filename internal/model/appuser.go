package model

// TenantID identifies one tenant organization. It is stable once assigned.
type TenantID string

// TenantPending is the sentinel linkage value for an identity whose tenant
// has not been resolved yet. It is never a real tenant id.
const TenantPending TenantID = "pending"

func (t TenantID) IsPending() bool {
	return t == TenantPending || t == ""
}

func (t TenantID) String() string {
	return string(t)
}

type Role string

const (
	RoleClientAdmin Role = "client_admin"
	RoleSuperAdmin  Role = "super_admin"
)

// AppUser is the application-level view of an authenticated identity.
// It is derived on every sign-in and cached in the session row; it is never
// persisted as its own table.
type AppUser struct {
	ID       string   `json:"id"` // identity provider user id
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	TenantID TenantID `json:"tenant_id"`
}

func (u *AppUser) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}
