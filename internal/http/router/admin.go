package router

import (
	"chairside.app/console/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AdminRouter(rg *gin.RouterGroup, h *handler.AdminHandler) {
	rg.GET("/tenants", h.ListTenants)
	rg.GET("/tenants/:id", h.GetTenant)
	rg.PUT("/tenants/:id/plan", h.UpdatePlan)
	rg.PUT("/tenants/:id/status", h.UpdateStatus)
	rg.DELETE("/tenants/:id", h.DeleteTenant)
}
