package model

import "time"

// Session is the server-side session row. It carries the AppUser fields
// derived at sign-in, including the cached tenant linkage. The resolution
// engine is the only writer of TenantID after creation.
type Session struct {
	ID         int64     `json:"id"`
	IdentityID string    `json:"identity_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	TenantID   TenantID  `json:"tenant_id"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// User rebuilds the session's AppUser view.
func (s *Session) User() *AppUser {
	return &AppUser{
		ID:       s.IdentityID,
		Email:    s.Email,
		Name:     s.Name,
		Role:     s.Role,
		TenantID: s.TenantID,
	}
}
