package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httpresp"
	"github.com/devsquadbr/crm-template/internal/middleware"
)

// AdminService covers the role-gated administration surface.
type AdminService interface {
	SearchUsers(ctx context.Context, callerID string, search dto.Search) (*dto.SearchResponse[dto.UserListItem], error)
	ToggleAdministratorRole(ctx context.Context, targetID, callerID string) error
	SetAdministratorRole(ctx context.Context, targetID, callerID string, isAdmin bool) error
	DeleteUser(ctx context.Context, targetID, callerID string) error
	GetSettings(ctx context.Context) (*dto.SystemSettings, error)
	UpdateSettings(ctx context.Context, callerID string, in dto.SystemSettings) error
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

func (h *AdminHandler) SearchUsers(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req dto.Search
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	resp, err := h.service.SearchUsers(c.Request.Context(), callerID, req)
	if err != nil {
		writeError(c, err, "failed_to_search_users")
		return
	}

	httpresp.OK(c, resp)
}

func (h *AdminHandler) ToggleAdminRole(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.service.ToggleAdministratorRole(c.Request.Context(), c.Param("id"), callerID); err != nil {
		writeError(c, err, "failed_to_toggle_role")
		return
	}

	httpresp.OKMessage(c, "Administrator role toggled")
}

type SetAdminRoleRequest struct {
	IsAdministrator *bool `json:"is_administrator" binding:"required"`
}

func (h *AdminHandler) SetAdminRole(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req SetAdminRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.service.SetAdministratorRole(
		c.Request.Context(), c.Param("id"), callerID, *req.IsAdministrator,
	); err != nil {
		writeError(c, err, "failed_to_set_role")
		return
	}

	httpresp.OKMessage(c, "Administrator role updated")
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id"), callerID); err != nil {
		writeError(c, err, "failed_to_delete_user")
		return
	}

	httpresp.OKMessage(c, "User deleted")
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	settings, err := h.service.GetSettings(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_get_settings")
		return
	}

	httpresp.OK(c, settings)
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	callerID := c.MustGet(middleware.ContextUserID).(string)

	var req dto.SystemSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.service.UpdateSettings(c.Request.Context(), callerID, req); err != nil {
		writeError(c, err, "failed_to_update_settings")
		return
	}

	httpresp.OKMessage(c, "Settings updated")
}
