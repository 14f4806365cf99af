package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"chairside.app/console/internal/http/dto"
	"chairside.app/console/internal/http/middleware"
	"chairside.app/console/internal/model"
	"chairside.app/console/internal/service"
	"github.com/gin-gonic/gin"
)

// WorkspaceHandler serves the authenticated tenant workspace: resolution,
// the onboarding transitions and every tenant-scoped write.
type WorkspaceHandler struct {
	engine    service.ResolutionEngine
	workspace service.WorkspaceService
}

func NewWorkspaceHandler(engine service.ResolutionEngine, workspace service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{engine: engine, workspace: workspace}
}

// Resolve returns the current workspace resolution for the signed-in user.
// The dashboard calls this on every load.
func (h *WorkspaceHandler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)
	sessionID := middleware.GetSessionID(ctx)

	resolution, err := h.engine.Resolve(ctx, sessionID, user)
	if err != nil {
		slog.ErrorContext(ctx, "workspace resolution failed", "error", err, "identity_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve workspace"})
		return
	}

	c.JSON(http.StatusOK, dto.ToResolutionResponse(resolution))
}

// CreateOrganization bootstraps a tenant for a user without one.
func (h *WorkspaceHandler) CreateOrganization(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)
	sessionID := middleware.GetSessionID(ctx)

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.engine.CreateOrganization(ctx, sessionID, user, req.Name)
	if err != nil {
		slog.ErrorContext(ctx, "organization bootstrap failed", "error", err, "identity_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

// Join links the user to an existing tenant via an invite link.
func (h *WorkspaceHandler) Join(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)
	sessionID := middleware.GetSessionID(ctx)

	var req dto.JoinTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.engine.JoinTenant(ctx, sessionID, user, model.TenantID(req.TenantID))
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invite link is no longer valid"})
			return
		}
		slog.ErrorContext(ctx, "tenant join failed", "error", err, "identity_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join organization"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// Recover replaces a stale tenant linkage with a freshly bootstrapped tenant.
func (h *WorkspaceHandler) Recover(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)
	sessionID := middleware.GetSessionID(ctx)

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.engine.RecoverOrphan(ctx, sessionID, user, req.Name)
	if err != nil {
		slog.ErrorContext(ctx, "orphan recovery failed", "error", err, "identity_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recover workspace"})
		return
	}

	c.JSON(http.StatusCreated, snapshot)
}

func (h *WorkspaceHandler) Snapshot(c *gin.Context) {
	ctx := c.Request.Context()
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	snapshot, err := h.workspace.Snapshot(ctx, tenantID)
	if err != nil {
		slog.ErrorContext(ctx, "snapshot load failed", "error", err, "tenant_id", tenantID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workspace"})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func (h *WorkspaceHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": service.SystemPresets()})
}

func (h *WorkspaceHandler) UpsertClinic(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.UpsertClinicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.UpsertClinic(c.Request.Context(), tenantID, req.ToModel())
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) DeleteClinic(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	result, err := h.workspace.DeleteClinic(c.Request.Context(), tenantID, c.Param("id"))
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) UpsertSystem(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.UpsertSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.UpsertSystem(c.Request.Context(), tenantID, req.ToModel())
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) DeleteSystem(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	result, err := h.workspace.DeleteSystem(c.Request.Context(), tenantID, c.Param("id"))
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) InstallPresets(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.InstallPresetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.InstallPresets(c.Request.Context(), tenantID, req.Names)
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) UpsertEmployee(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.UpsertEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.UpsertEmployee(c.Request.Context(), tenantID, req.ToModel())
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) DeleteEmployee(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}
	result, err := h.workspace.DeleteEmployee(c.Request.Context(), tenantID, c.Param("id"))
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) AssignSystems(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.AssignSystemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.AssignSystems(c.Request.Context(), tenantID, c.Param("id"), req.SystemIDs)
	h.respond(c, result, err)
}

func (h *WorkspaceHandler) UpdateGovernance(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req model.GovernanceConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.workspace.UpdateGovernance(c.Request.Context(), tenantID, req)
	h.respond(c, result, err)
}

// tenantID scopes every write to the caller's own tenant. Users without a
// resolved tenant have nothing to mutate.
func (h *WorkspaceHandler) tenantID(c *gin.Context) (model.TenantID, bool) {
	user := middleware.GetUser(c.Request.Context())
	if user == nil || user.TenantID.IsPending() {
		c.JSON(http.StatusConflict, gin.H{"error": "no workspace resolved"})
		return "", false
	}
	return user.TenantID, true
}

func (h *WorkspaceHandler) respond(c *gin.Context, result *service.MutationResult, err error) {
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "workspace mutation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply change"})
		return
	}
	status := http.StatusOK
	if !result.OK {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, result)
}
