package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"chairside.app/console/internal/store"
)

var _ = Describe("AdminService", func() {
	var (
		svc      service.AdminService
		tenants  *mockTenantStore
		provider *mockIdentityProvider
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		tenants = &mockTenantStore{}
		provider = &mockIdentityProvider{}
		svc = service.NewAdminService(tenants, provider, nil)
	})

	Describe("DeleteTenant", func() {
		It("should delete tenant data and the owner identity", func() {
			tenants.getSnapshotFn = func(_ context.Context, tid model.TenantID) (*model.TenantSnapshot, error) {
				return &model.TenantSnapshot{Tenant: model.Tenant{ID: tid, OwnerEmail: "owner@x.test"}}, nil
			}
			deleted := false
			tenants.deleteFn = func(_ context.Context, tid model.TenantID) error {
				deleted = true
				return nil
			}
			var deletedEmail string
			provider.deleteByEmailFn = func(_ context.Context, email string) error {
				deletedEmail = email
				return nil
			}

			err := svc.DeleteTenant(ctx, "tenant-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeTrue())
			Expect(deletedEmail).To(Equal("owner@x.test"))
		})

		It("should succeed even when identity deletion fails", func() {
			tenants.getSnapshotFn = func(_ context.Context, tid model.TenantID) (*model.TenantSnapshot, error) {
				return &model.TenantSnapshot{Tenant: model.Tenant{ID: tid, OwnerEmail: "owner@x.test"}}, nil
			}
			provider.deleteByEmailFn = func(_ context.Context, _ string) error {
				return errors.New("provider unavailable")
			}

			err := svc.DeleteTenant(ctx, "tenant-1")

			Expect(err).NotTo(HaveOccurred())
		})

		It("should report a missing tenant", func() {
			tenants.getSnapshotFn = func(_ context.Context, _ model.TenantID) (*model.TenantSnapshot, error) {
				return nil, store.ErrNotFound
			}

			err := svc.DeleteTenant(ctx, "tenant-gone")

			Expect(err).To(MatchError(service.ErrTenantNotFound))
		})
	})

	Describe("UpdatePlan", func() {
		It("should map a missing tenant to the service error", func() {
			tenants.updatePlanFn = func(_ context.Context, _ model.TenantID, _ model.TenantPlan) error {
				return store.ErrNotFound
			}

			err := svc.UpdatePlan(ctx, "tenant-gone", model.TenantPlanPro)

			Expect(err).To(MatchError(service.ErrTenantNotFound))
		})
	})
})
