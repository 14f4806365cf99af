package dto

import (
	"fmt"

	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
)

const (
	ResolutionStateSuperAdmin = "super_admin"
	ResolutionStateResolved   = "resolved"
	ResolutionStateNoTenant   = "no_tenant"
	ResolutionStateOrphaned   = "orphaned"
)

// ResolutionResponse is the wire form of a workspace resolution. State tells
// the dashboard which screen to render; only the matching payload field is
// set.
type ResolutionResponse struct {
	State         string                 `json:"state"`
	Snapshot      *model.TenantSnapshot  `json:"snapshot,omitempty"`
	Tenants       []model.TenantOverview `json:"tenants,omitempty"`
	StaleTenantID model.TenantID         `json:"stale_tenant_id,omitempty"`
}

func ToResolutionResponse(resolution service.Resolution) *ResolutionResponse {
	switch r := resolution.(type) {
	case service.SuperAdminView:
		return &ResolutionResponse{State: ResolutionStateSuperAdmin, Tenants: r.Tenants}
	case service.Resolved:
		return &ResolutionResponse{State: ResolutionStateResolved, Snapshot: r.Snapshot}
	case service.Orphaned:
		return &ResolutionResponse{State: ResolutionStateOrphaned, StaleTenantID: r.StaleTenantID}
	case service.NoTenant:
		return &ResolutionResponse{State: ResolutionStateNoTenant}
	default:
		// Resolution is sealed; a new variant must be mapped here.
		panic(fmt.Sprintf("unmapped resolution variant %T", resolution))
	}
}
