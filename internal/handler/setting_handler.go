package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jadwalku/jadwal-api/internal/service"
	appErrors "github.com/jadwalku/jadwal-api/pkg/errors"
	"github.com/jadwalku/jadwal-api/pkg/response"
)

type cacheInvalidator interface {
	InvalidateCache(ctx context.Context)
}

// SettingHandler exposes application settings endpoints.
type SettingHandler struct {
	settings *service.SettingService
	stats    cacheInvalidator
}

// NewSettingHandler constructs handler.
func NewSettingHandler(settings *service.SettingService, stats cacheInvalidator) *SettingHandler {
	return &SettingHandler{settings: settings, stats: stats}
}

// GetPolicy godoc
// @Summary Get the active load counting policy
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/policy [get]
func (h *SettingHandler) GetPolicy(c *gin.Context) {
	policy, err := h.settings.GetPolicy(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"policy": policy}, nil)
}

type updatePolicyRequest struct {
	Policy string `json:"policy"`
}

// UpdatePolicy godoc
// @Summary Update the load counting policy
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body handler.updatePolicyRequest true "Policy payload"
// @Success 200 {object} response.Envelope
// @Router /settings/policy [put]
func (h *SettingHandler) UpdatePolicy(c *gin.Context) {
	var req updatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	policy, err := h.settings.UpdatePolicy(c.Request.Context(), req.Policy)
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.stats != nil {
		h.stats.InvalidateCache(c.Request.Context())
	}
	response.JSON(c, http.StatusOK, gin.H{"policy": policy}, nil)
}
