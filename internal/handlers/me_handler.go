package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devsquadbr/crm-template/internal/dto"
	"github.com/devsquadbr/crm-template/internal/httpresp"
	"github.com/devsquadbr/crm-template/internal/middleware"
)

// MeService covers the caller-scoped account endpoints plus the anonymous
// capability flags.
type MeService interface {
	Roles(ctx context.Context, userID string) ([]string, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DeleteOwnAccount(ctx context.Context, userID string) error
	Operations(ctx context.Context) (*dto.Operations, error)
}

type MeHandler struct {
	service MeService
}

func NewMeHandler(service MeService) *MeHandler {
	return &MeHandler{service: service}
}

func (h *MeHandler) Roles(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	roles, err := h.service.Roles(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err, "failed_to_get_roles")
		return
	}

	httpresp.OK(c, gin.H{"roles": roles})
}

type AccountExistsRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *MeHandler) ExistsByEmail(c *gin.Context) {
	var req AccountExistsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	exists, err := h.service.ExistsByEmail(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err, "failed_to_check_email")
		return
	}

	httpresp.OK(c, gin.H{"exists": exists})
}

func (h *MeHandler) DeleteAccount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	if err := h.service.DeleteOwnAccount(c.Request.Context(), userID); err != nil {
		writeError(c, err, "failed_to_delete_account")
		return
	}

	httpresp.OKMessage(c, "Account deleted")
}

func (h *MeHandler) Operations(c *gin.Context) {
	ops, err := h.service.Operations(c.Request.Context())
	if err != nil {
		writeError(c, err, "failed_to_get_operations")
		return
	}

	httpresp.OK(c, ops)
}
