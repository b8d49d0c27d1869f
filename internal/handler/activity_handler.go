package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type activityService interface {
	List(ctx context.Context, limit int) []models.ActivityLog
}

// ActivityHandler lists the activity log.
type ActivityHandler struct {
	service activityService
}

// NewActivityHandler constructs the handler.
func NewActivityHandler(service activityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// List godoc
// @Summary Recent activity, newest first
// @Tags Activity
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {object} response.Envelope
// @Router /activity-logs [get]
func (h *ActivityHandler) List(c *gin.Context) {
	entries := h.service.List(c.Request.Context(), intQuery(c, "limit", 0))
	response.JSON(c, http.StatusOK, entries, nil, markEmpty(c, len(entries) == 0, "no_activity"))
}
