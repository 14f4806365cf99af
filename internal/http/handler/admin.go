package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chairside.app/console/internal/http/dto"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ListTenants(c *gin.Context) {
	ctx := c.Request.Context()

	overviews, err := h.adminService.ListTenants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list tenants", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tenants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tenants": overviews})
}

func (h *AdminHandler) GetTenant(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := model.TenantID(c.Param("id"))

	snapshot, err := h.adminService.GetTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load tenant", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tenant"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := model.TenantID(c.Param("id"))

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminService.UpdatePlan(ctx, tenantID, model.TenantPlan(req.Plan)); err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update tenant plan", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "plan updated"})
}

func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := model.TenantID(c.Param("id"))

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.adminService.UpdateStatus(ctx, tenantID, model.TenantStatus(req.Status)); err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update tenant status", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *AdminHandler) DeleteTenant(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := model.TenantID(c.Param("id"))

	if err := h.adminService.DeleteTenant(ctx, tenantID); err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to delete tenant", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tenant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tenant deleted"})
}
