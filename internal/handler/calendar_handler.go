package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type calendarService interface {
	ListMonth(ctx context.Context, year, month int) ([]models.CalendarEvent, error)
	ListDay(ctx context.Context, date string) ([]models.CalendarEvent, error)
	Month(ctx context.Context, year, month int) (*models.CalendarMonth, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (*models.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

// CalendarHandler exposes the academic calendar.
type CalendarHandler struct {
	service calendarService
	now     func() time.Time
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service, now: time.Now}
}

// yearMonth reads either ?ref=YYYY-MM or ?year=&month=, defaulting to the
// current month.
func (h *CalendarHandler) yearMonth(c *gin.Context) (int, int, error) {
	if ref := strings.TrimSpace(c.Query("ref")); ref != "" {
		return service.ParseMonth(ref)
	}
	now := h.now()
	return intQuery(c, "year", now.Year()), intQuery(c, "month", int(now.Month())), nil
}

// ListEvents godoc
// @Summary Events of a month
// @Tags Calendar
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param ref query string false "Month reference YYYY-MM"
// @Success 200 {object} response.Envelope
// @Router /calendar/events [get]
func (h *CalendarHandler) ListEvents(c *gin.Context) {
	year, month, err := h.yearMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	events, err := h.service.ListMonth(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil, markEmpty(c, len(events) == 0, "no_events"))
}

// ListDay godoc
// @Summary Events of a day
// @Tags Calendar
// @Produce json
// @Param date query string true "Date YYYY-MM-DD"
// @Success 200 {object} response.Envelope
// @Router /calendar/events/day [get]
func (h *CalendarHandler) ListDay(c *gin.Context) {
	events, err := h.service.ListDay(c.Request.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil, markEmpty(c, len(events) == 0, "no_events"))
}

// Month godoc
// @Summary Month grid with event counts
// @Tags Calendar
// @Produce json
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Param ref query string false "Month reference YYYY-MM"
// @Success 200 {object} response.Envelope
// @Router /calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	year, month, err := h.yearMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	grid, err := h.service.Month(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grid, nil)
}

// Create godoc
// @Summary Create calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event"
// @Success 201 {object} response.Envelope
// @Router /calendar/events [post]
func (h *CalendarHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	event, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete godoc
// @Summary Delete calendar event
// @Tags Calendar
// @Param id path string true "Event ID"
// @Success 204
// @Router /calendar/events/{id} [delete]
func (h *CalendarHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
