package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type enrollmentService interface {
	Catalog() models.GradeCatalog
	View(ctx context.Context, q dto.EnrollmentQuery) (*dto.EnrollmentViewResponse, *models.Pagination, error)
	KPIs(ctx context.Context) []models.KPICount
	Tags(ctx context.Context, req dto.TagCommandRequest) (*dto.TagCommandResponse, error)
	Student(ctx context.Context, dni string) (*models.Student, error)
	Transfer(ctx context.Context, dni string) (*models.Student, error)
	Withdraw(ctx context.Context, dni string) (*models.Student, error)
	AssignVacancy(ctx context.Context, dni string) (*models.Student, error)
	ChangeSection(ctx context.Context, dni string, req dto.SectionChangeRequest) (*models.Student, error)
	Export(ctx context.Context, q dto.EnrollmentQuery, format string) (*dto.ExportFile, error)
}

// EnrollmentHandler exposes the matriculation table.
type EnrollmentHandler struct {
	service enrollmentService
}

// NewEnrollmentHandler constructs the handler.
func NewEnrollmentHandler(service enrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{service: service}
}

func enrollmentQuery(c *gin.Context) dto.EnrollmentQuery {
	return dto.EnrollmentQuery{
		KPI:  models.KPI(strings.TrimSpace(c.Query("kpi"))),
		Tags: c.QueryArray("tag"),
		Page: intQuery(c, "page", 1),
	}
}

// Catalog godoc
// @Summary Grade catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /catalog/grades [get]
func (h *EnrollmentHandler) Catalog(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Catalog(), nil)
}

// View godoc
// @Summary Derived enrollment view
// @Description Filters the roster by KPI and committed tags, ordered by full name.
// @Tags Enrollment
// @Produce json
// @Param kpi query string false "KPI selector"
// @Param tag query []string false "Committed tags in order" collectionFormat(multi)
// @Param page query int false "Page"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students [get]
func (h *EnrollmentHandler) View(c *gin.Context) {
	view, pagination, err := h.service.View(c.Request.Context(), enrollmentQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := markEmpty(c, len(view.Students) == 0, "clear_filters")
	response.JSON(c, http.StatusOK, view, pagination, meta)
}

// KPIs godoc
// @Summary Enrollment KPI counts
// @Tags Enrollment
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /enrollment/kpis [get]
func (h *EnrollmentHandler) KPIs(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.KPIs(c.Request.Context()), nil)
}

// Tags godoc
// @Summary Apply a tag command
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param payload body dto.TagCommandRequest true "Tag command"
// @Success 200 {object} response.Envelope
// @Router /enrollment/tags [post]
func (h *EnrollmentHandler) Tags(c *gin.Context) {
	var req dto.TagCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	res, err := h.service.Tags(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// Export godoc
// @Summary Export the enrollment view
// @Tags Enrollment
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Param kpi query string false "KPI selector"
// @Param tag query []string false "Committed tags in order" collectionFormat(multi)
// @Success 200 {file} file
// @Router /enrollment/students/export [get]
func (h *EnrollmentHandler) Export(c *gin.Context) {
	file, err := h.service.Export(c.Request.Context(), enrollmentQuery(c), strings.ToLower(c.DefaultQuery("format", dto.ExportFormatCSV)))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

// Student godoc
// @Summary Student detail
// @Tags Enrollment
// @Produce json
// @Param dni path string true "Document number"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students/{dni} [get]
func (h *EnrollmentHandler) Student(c *gin.Context) {
	student, err := h.service.Student(c.Request.Context(), c.Param("dni"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Transfer godoc
// @Summary Transfer a student out
// @Tags Enrollment
// @Produce json
// @Param dni path string true "Document number"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students/{dni}/transfer [post]
func (h *EnrollmentHandler) Transfer(c *gin.Context) {
	h.respond(c, h.service.Transfer)
}

// Withdraw godoc
// @Summary Withdraw a student
// @Tags Enrollment
// @Produce json
// @Param dni path string true "Document number"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students/{dni}/withdraw [post]
func (h *EnrollmentHandler) Withdraw(c *gin.Context) {
	h.respond(c, h.service.Withdraw)
}

// AssignVacancy godoc
// @Summary Assign a vacancy to a pending student
// @Tags Enrollment
// @Produce json
// @Param dni path string true "Document number"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students/{dni}/assign-vacancy [post]
func (h *EnrollmentHandler) AssignVacancy(c *gin.Context) {
	h.respond(c, h.service.AssignVacancy)
}

// ChangeSection godoc
// @Summary Change section or shift
// @Tags Enrollment
// @Accept json
// @Produce json
// @Param dni path string true "Document number"
// @Param payload body dto.SectionChangeRequest true "New placement"
// @Success 200 {object} response.Envelope
// @Router /enrollment/students/{dni}/change-section [post]
func (h *EnrollmentHandler) ChangeSection(c *gin.Context) {
	var req dto.SectionChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	student, err := h.service.ChangeSection(c.Request.Context(), c.Param("dni"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

func (h *EnrollmentHandler) respond(c *gin.Context, action func(context.Context, string) (*models.Student, error)) {
	student, err := action(c.Request.Context(), c.Param("dni"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}
