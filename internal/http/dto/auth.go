package dto

import "chairside.app/console/internal/model"

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"omitempty,max=255"`
	// OrganizationName triggers bootstrap of a new tenant after sign-up.
	OrganizationName string `json:"organization_name" binding:"omitempty,min=1,max=255"`
	// InviteTenantID joins an existing tenant instead. Takes precedence over
	// OrganizationName.
	InviteTenantID string `json:"invite_tenant_id" binding:"omitempty,max=64"`
}

type MeResponse struct {
	ID       string         `json:"id"`
	Email    string         `json:"email"`
	Name     string         `json:"name"`
	Role     model.Role     `json:"role"`
	TenantID model.TenantID `json:"tenant_id"`
}

func ToMeResponse(user *model.AppUser) *MeResponse {
	return &MeResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		TenantID: user.TenantID,
	}
}
