package router

import (
	"chairside.app/console/internal/http/handler"
	"chairside.app/console/internal/http/middleware"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	v1 := router.Group("/api/v1")
	{
		tenantHandler := handler.NewTenantHandler(services.Workspace())
		v1.GET("/tenants/:id/preview", tenantHandler.Preview)

		workspaceHandler := handler.NewWorkspaceHandler(services.Resolution(), services.Workspace())
		workspace := v1.Group("/workspace", middleware.RequireAuth(services.Auth()))
		WorkspaceRouter(workspace, workspaceHandler)

		adminHandler := handler.NewAdminHandler(services.Admin())
		admin := v1.Group("/admin", middleware.RequireAuth(services.Auth()), middleware.RequireSuperAdmin())
		AdminRouter(admin, adminHandler)
	}
}
