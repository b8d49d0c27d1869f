package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type wizardService interface {
	Start(ctx context.Context) *service.WizardSession
	Get(ctx context.Context, id string) (*service.WizardSession, error)
	SetIdentification(ctx context.Context, id string, req dto.IdentificationRequest) (*service.WizardSession, error)
	SetPlacement(ctx context.Context, id string, req dto.PlacementRequest) (*service.WizardSession, error)
	Next(ctx context.Context, id string) (*service.WizardSession, error)
	Back(ctx context.Context, id string) (*service.WizardSession, error)
	Finish(ctx context.Context, id string) (*service.WizardSession, error)
}

// WizardHandler drives enrollment wizard sessions.
type WizardHandler struct {
	service wizardService
}

// NewWizardHandler constructs the handler.
func NewWizardHandler(service wizardService) *WizardHandler {
	return &WizardHandler{service: service}
}

// Start godoc
// @Summary Start an enrollment wizard session
// @Tags Wizard
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /enrollment/wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	response.Created(c, h.service.Start(c.Request.Context()))
}

// Get godoc
// @Summary Wizard session state
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	h.respond(c, h.service.Get)
}

// SetIdentification godoc
// @Summary Identify the student to enroll
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.IdentificationRequest true "DNI or student code"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id}/identification [put]
func (h *WizardHandler) SetIdentification(c *gin.Context) {
	var req dto.IdentificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.SetIdentification(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// SetPlacement godoc
// @Summary Set level, grade, section and condition
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.PlacementRequest true "Placement"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id}/placement [put]
func (h *WizardHandler) SetPlacement(c *gin.Context) {
	var req dto.PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.SetPlacement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// Next godoc
// @Summary Advance to the next step
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	h.respond(c, h.service.Next)
}

// Back godoc
// @Summary Return to the previous step
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c, h.service.Back)
}

// Finish godoc
// @Summary Confirm the enrollment
// @Tags Wizard
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /enrollment/wizard/{id}/finish [post]
func (h *WizardHandler) Finish(c *gin.Context) {
	h.respond(c, h.service.Finish)
}

func (h *WizardHandler) respond(c *gin.Context, step func(context.Context, string) (*service.WizardSession, error)) {
	session, err := step(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}
