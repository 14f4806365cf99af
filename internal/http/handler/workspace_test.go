package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chairside.app/console/internal/http/handler"
	"chairside.app/console/internal/http/middleware"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
)

var _ = Describe("WorkspaceHandler", func() {
	var (
		router    *gin.Engine
		auth      *mockAuthService
		engine    *mockResolutionEngine
		workspace *mockWorkspaceService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		auth = &mockAuthService{}
		engine = &mockResolutionEngine{}
		workspace = &mockWorkspaceService{}

		auth.validateSessionFn = func(_ context.Context, sessionID int64) (*model.AppUser, error) {
			return &model.AppUser{
				ID:       "user_01",
				Email:    "demo@x.test",
				Role:     model.RoleClientAdmin,
				TenantID: "tenant-1",
			}, nil
		}

		h := handler.NewWorkspaceHandler(engine, workspace)
		router = gin.New()
		group := router.Group("/api/v1/workspace", middleware.RequireAuth(auth))
		group.PUT("/clinics", h.UpsertClinic)
		group.DELETE("/clinics/:id", h.DeleteClinic)
		group.GET("/resolution", h.Resolve)
	})

	put := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "console_session", Value: "42"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("applies a clinic upsert scoped to the caller's tenant", func() {
		workspace.upsertClinicFn = func(_ context.Context, tid model.TenantID, clinic *model.Clinic) (*service.MutationResult, error) {
			Expect(tid).To(Equal(model.TenantID("tenant-1")))
			Expect(clinic.Name).To(Equal("Branch West"))
			return &service.MutationResult{
				OK:       true,
				Message:  "Clinic saved.",
				Snapshot: &model.TenantSnapshot{Tenant: model.Tenant{ID: tid}},
			}, nil
		}

		w := put("/api/v1/workspace/clinics", `{"name":"Branch West","type":"Branch"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring("Clinic saved."))
	})

	It("returns 422 with the failure message when the mutation is rejected", func() {
		workspace.upsertClinicFn = func(_ context.Context, tid model.TenantID, _ *model.Clinic) (*service.MutationResult, error) {
			return &service.MutationResult{
				OK:       false,
				Message:  "The record no longer exists.",
				Snapshot: &model.TenantSnapshot{Tenant: model.Tenant{ID: tid}},
			}, nil
		}

		w := put("/api/v1/workspace/clinics", `{"name":"Branch West","type":"Branch"}`)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(w.Body.String()).To(ContainSubstring("no longer exists"))
	})

	It("rejects writes from a session without a resolved tenant", func() {
		auth.validateSessionFn = func(_ context.Context, _ int64) (*model.AppUser, error) {
			return &model.AppUser{ID: "user_01", TenantID: model.TenantPending}, nil
		}

		w := put("/api/v1/workspace/clinics", `{"name":"Branch West","type":"Branch"}`)

		Expect(w.Code).To(Equal(http.StatusConflict))
	})

	It("serves the resolution for the signed-in user", func() {
		engine.resolveFn = func(_ context.Context, sessionID int64, user *model.AppUser) (service.Resolution, error) {
			Expect(sessionID).To(Equal(int64(42)))
			return service.Resolved{
				Snapshot: &model.TenantSnapshot{Tenant: model.Tenant{ID: user.TenantID}},
			}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/workspace/resolution", nil)
		req.AddCookie(&http.Cookie{Name: "console_session", Value: "42"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"state":"resolved"`))
	})
})
