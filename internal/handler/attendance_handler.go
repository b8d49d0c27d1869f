package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/logger"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type attendanceService interface {
	Dashboard(ctx context.Context, session string, q dto.AttendanceQuery) (*models.AttendanceSnapshot, error)
	Report(ctx context.Context, q dto.AttendanceQuery) ([]byte, error)
}

// AttendanceHandler serves the attendance dashboard.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

func bindAttendanceQuery(c *gin.Context) (dto.AttendanceQuery, bool) {
	var q dto.AttendanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return q, false
	}
	return q, true
}

// Dashboard godoc
// @Summary Attendance KPIs, weekday chart and alerts
// @Description Requests sharing an X-Client-Session value supersede each other; the older one answers 409 SUPERSEDED.
// @Tags Attendance
// @Produce json
// @Param X-Client-Session header string false "Client session key"
// @Param populationFocus query string false "Estudiantes or Docentes"
// @Param timeRange query string false "Hoy, Semana, Mes or Año"
// @Param level query string false "Todos, Inicial, Primaria or Secundaria"
// @Param grade query string false "Grade"
// @Param section query string false "Section"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /attendance/dashboard [get]
func (h *AttendanceHandler) Dashboard(c *gin.Context) {
	q, ok := bindAttendanceQuery(c)
	if !ok {
		return
	}
	start := time.Now()
	snap, err := h.service.Dashboard(c.Request.Context(), c.GetHeader(logger.SessionHeader), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := markEmpty(c, snap.Population == 0, "change_filters")
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	if len(snap.Warnings) > 0 {
		meta["data_quality_warnings"] = len(snap.Warnings)
	}
	response.JSON(c, http.StatusOK, snap, nil, meta)
}

// Report godoc
// @Summary Attendance report PDF
// @Tags Attendance
// @Produce application/pdf
// @Param populationFocus query string false "Estudiantes or Docentes"
// @Param timeRange query string false "Hoy, Semana, Mes or Año"
// @Param level query string false "Level"
// @Param grade query string false "Grade"
// @Param section query string false "Section"
// @Success 200 {file} file
// @Router /attendance/report [get]
func (h *AttendanceHandler) Report(c *gin.Context) {
	q, ok := bindAttendanceQuery(c)
	if !ok {
		return
	}
	payload, err := h.service.Report(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, "Reporte_Asistencia.pdf", "application/pdf", payload)
}
