package router

import (
	"chairside.app/console/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("/resolution", h.Resolve)
	rg.GET("/snapshot", h.Snapshot)

	rg.POST("/organization", h.CreateOrganization)
	rg.POST("/join", h.Join)
	rg.POST("/recover", h.Recover)

	rg.GET("/presets", h.Presets)
	rg.POST("/systems/presets", h.InstallPresets)

	rg.PUT("/clinics", h.UpsertClinic)
	rg.DELETE("/clinics/:id", h.DeleteClinic)

	rg.PUT("/systems", h.UpsertSystem)
	rg.DELETE("/systems/:id", h.DeleteSystem)

	rg.PUT("/employees", h.UpsertEmployee)
	rg.DELETE("/employees/:id", h.DeleteEmployee)
	rg.PUT("/employees/:id/systems", h.AssignSystems)

	rg.PUT("/governance", h.UpdateGovernance)
}
