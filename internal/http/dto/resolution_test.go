package dto_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chairside.app/console/internal/http/dto"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
)

var _ = Describe("ToResolutionResponse", func() {
	It("should map every resolution variant to its wire state", func() {
		resp := dto.ToResolutionResponse(service.SuperAdminView{
			Tenants: []model.TenantOverview{{Tenant: model.Tenant{ID: "tenant-1"}}},
		})
		Expect(resp.State).To(Equal(dto.ResolutionStateSuperAdmin))
		Expect(resp.Tenants).To(HaveLen(1))

		resp = dto.ToResolutionResponse(service.Resolved{
			Snapshot: &model.TenantSnapshot{Tenant: model.Tenant{ID: "tenant-1"}},
		})
		Expect(resp.State).To(Equal(dto.ResolutionStateResolved))
		Expect(resp.Snapshot).NotTo(BeNil())

		resp = dto.ToResolutionResponse(service.NoTenant{})
		Expect(resp.State).To(Equal(dto.ResolutionStateNoTenant))
		Expect(resp.Snapshot).To(BeNil())

		resp = dto.ToResolutionResponse(service.Orphaned{StaleTenantID: "tenant-gone"})
		Expect(resp.State).To(Equal(dto.ResolutionStateOrphaned))
		Expect(resp.StaleTenantID).To(Equal(model.TenantID("tenant-gone")))
	})
})
