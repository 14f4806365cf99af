package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

// TenantHandler serves the unauthenticated invite-link preview.
type TenantHandler struct {
	workspace service.WorkspaceService
}

func NewTenantHandler(workspace service.WorkspaceService) *TenantHandler {
	return &TenantHandler{workspace: workspace}
}

// Preview exposes id and name only; invite links are shareable and carry no
// session.
func (h *TenantHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID := model.TenantID(c.Param("id"))

	ref, err := h.workspace.Preview(ctx, tenantID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to load tenant preview", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load preview"})
		return
	}

	c.JSON(http.StatusOK, ref)
}
