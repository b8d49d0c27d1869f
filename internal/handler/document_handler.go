package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type documentService interface {
	EnrollmentForm(ctx context.Context, dni string) (*dto.ExportFile, error)
	Certificate(ctx context.Context, dni string) (*dto.ExportFile, error)
	Job(ctx context.Context, id string) (*models.DocumentJob, error)
	Download(ctx context.Context, token string) (*dto.ExportFile, error)
}

// DocumentHandler serves generated student documents.
type DocumentHandler struct {
	service documentService
}

// NewDocumentHandler constructs the handler.
func NewDocumentHandler(service documentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func sendFile(c *gin.Context, file *dto.ExportFile, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

// EnrollmentForm godoc
// @Summary Enrollment form PDF
// @Tags Documents
// @Produce application/pdf
// @Param dni path string true "Student DNI"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /documents/students/{dni}/enrollment-form [get]
func (h *DocumentHandler) EnrollmentForm(c *gin.Context) {
	file, err := h.service.EnrollmentForm(c.Request.Context(), c.Param("dni"))
	sendFile(c, file, err)
}

// Certificate godoc
// @Summary Enrollment certificate PDF
// @Tags Documents
// @Produce application/pdf
// @Param dni path string true "Student DNI"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /documents/students/{dni}/certificate [get]
func (h *DocumentHandler) Certificate(c *gin.Context) {
	file, err := h.service.Certificate(c.Request.Context(), c.Param("dni"))
	sendFile(c, file, err)
}

// Job godoc
// @Summary Document job status
// @Tags Documents
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} response.Envelope
// @Router /documents/jobs/{id} [get]
func (h *DocumentHandler) Job(c *gin.Context) {
	job, err := h.service.Job(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, job, nil)
}

// Download godoc
// @Summary Download a finished document job
// @Tags Documents
// @Produce application/pdf
// @Param token query string true "Signed token"
// @Success 200 {file} file
// @Failure 410 {object} response.Envelope
// @Router /documents/download [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	file, err := h.service.Download(c.Request.Context(), c.Query("token"))
	sendFile(c, file, err)
}
