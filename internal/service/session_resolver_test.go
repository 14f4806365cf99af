package service_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chairside.app/console/internal/identity"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
)

var _ = Describe("SessionResolver", func() {
	var resolver service.SessionResolver

	BeforeEach(func() {
		resolver = service.NewSessionResolver("admin@saas-provider.com")
	})

	It("should derive a regular user with pending linkage", func() {
		user := resolver.Resolve(&identity.Principal{
			ID:    "user_01",
			Email: "demo@x.test",
			Name:  "Demo User",
		})

		Expect(user.ID).To(Equal("user_01"))
		Expect(user.Role).To(Equal(model.RoleClientAdmin))
		Expect(user.TenantID).To(Equal(model.TenantPending))
		Expect(user.TenantID.IsPending()).To(BeTrue())
	})

	It("should default the name to the email local part", func() {
		user := resolver.Resolve(&identity.Principal{
			ID:    "user_02",
			Email: "taro.yamada@example.com",
		})

		Expect(user.Name).To(Equal("taro.yamada"))
	})

	It("should grant the superuser role by email, case-insensitively", func() {
		user := resolver.Resolve(&identity.Principal{
			ID:    "user_03",
			Email: "Admin@SaaS-Provider.com",
			Name:  "Operator",
		})

		Expect(user.Role).To(Equal(model.RoleSuperAdmin))
	})

	It("should carry a tenant hint into the linkage", func() {
		user := resolver.Resolve(&identity.Principal{
			ID:           "user_04",
			Email:        "linked@x.test",
			TenantIDHint: "tenant-42",
		})

		Expect(user.TenantID).To(Equal(model.TenantID("tenant-42")))
	})

	It("should treat an explicit pending hint as pending", func() {
		user := resolver.Resolve(&identity.Principal{
			ID:           "user_05",
			Email:        "fresh@x.test",
			TenantIDHint: "pending",
		})

		Expect(user.TenantID).To(Equal(model.TenantPending))
	})

	It("should be deterministic for the same principal", func() {
		principal := &identity.Principal{ID: "user_06", Email: "same@x.test", Name: "Same"}

		first := resolver.Resolve(principal)
		second := resolver.Resolve(principal)

		Expect(first).To(Equal(second))
	})
})
