package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"chairside.app/console/internal/http/handler"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
)

var _ = Describe("AuthHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		authSvc = &mockAuthService{}
		h := handler.NewAuthHandler(authSvc, false)

		router.POST("/auth/signin", h.SignIn)
		router.POST("/auth/signup", h.SignUp)
		router.GET("/auth/me", h.Me)
	})

	Describe("SignIn", func() {
		It("returns 200, the resolution and a session cookie", func() {
			authSvc.signInFn = func(_ context.Context, email, _ string) (*service.AuthResult, error) {
				return &service.AuthResult{
					User:    &model.AppUser{ID: "user_01", Email: email, Role: model.RoleClientAdmin, TenantID: "tenant-1"},
					Session: &model.Session{ID: 123},
					Resolution: service.Resolved{
						Snapshot: &model.TenantSnapshot{Tenant: model.Tenant{ID: "tenant-1"}},
					},
				}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "demo@x.test",
				"password": "secret-password",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp struct {
				Resolution struct {
					State string `json:"state"`
				} `json:"resolution"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Resolution.State).To(Equal("resolved"))

			cookies := w.Result().Cookies()
			var found bool
			for _, c := range cookies {
				if c.Name == "console_session" && c.Value == "123" {
					found = true
					Expect(c.HttpOnly).To(BeTrue())
				}
			}
			Expect(found).To(BeTrue())
		})

		It("returns 401 on bad credentials", func() {
			authSvc.signInFn = func(_ context.Context, _, _ string) (*service.AuthResult, error) {
				return nil, service.ErrInvalidCredentials
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "demo@x.test",
				"password": "wrong-password",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signin", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/signin", strings.NewReader(`{"email":"not-an-email"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("SignUp", func() {
		It("returns 409 when the account already exists", func() {
			authSvc.signUpFn = func(_ context.Context, _ service.SignUpParams) (*service.AuthResult, error) {
				return nil, service.ErrAlreadyRegistered
			}

			body, _ := json.Marshal(map[string]string{
				"email":    "demo@x.test",
				"password": "secret-password",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("passes the sign-up intents through", func() {
			var captured service.SignUpParams
			authSvc.signUpFn = func(_ context.Context, params service.SignUpParams) (*service.AuthResult, error) {
				captured = params
				return &service.AuthResult{
					User:       &model.AppUser{ID: "user_01", Email: params.Email},
					Session:    &model.Session{ID: 1},
					Resolution: service.NoTenant{},
				}, nil
			}

			body, _ := json.Marshal(map[string]string{
				"email":             "owner@acme.test",
				"password":          "secret-password",
				"organization_name": "Acme",
			})
			req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(captured.OrganizationName).To(Equal("Acme"))
		})
	})

	Describe("Me", func() {
		It("returns 401 without a session cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns the session user", func() {
			authSvc.validateSessionFn = func(_ context.Context, sessionID int64) (*model.AppUser, error) {
				Expect(sessionID).To(Equal(int64(55)))
				return &model.AppUser{ID: "user_01", Email: "demo@x.test", TenantID: "tenant-1"}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.AddCookie(&http.Cookie{Name: "console_session", Value: "55"})
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("demo@x.test"))
		})
	})
})
