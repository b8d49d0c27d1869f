package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/middleware"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/response"
)

type userService interface {
	List(ctx context.Context, q dto.UserQuery) ([]dto.UserRow, *models.Pagination, error)
	BulkDelete(ctx context.Context, req dto.BulkUsersRequest) (*dto.BulkDeleteResponse, error)
}

type idCardQueue interface {
	EnqueueIDCards(ctx context.Context, req dto.BulkUsersRequest) (*models.DocumentJob, error)
}

// UserHandler exposes the user directory.
type UserHandler struct {
	users     userService
	documents idCardQueue
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(users userService, documents idCardQueue) *UserHandler {
	return &UserHandler{users: users, documents: documents}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Param search query string false "Search by name or DNI"
// @Param kind query string false "student, staff or parent"
// @Param role query string false "Role"
// @Param status query string false "Status"
// @Param level query string false "Level"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Param toggle query string false "Header click: flips order on the current sort column, else sorts ascending by it"
// @Param page query int false "Page"
// @Param perPage query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	q := dto.UserQuery{
		Filter: models.UserFilter{
			Search: strings.TrimSpace(c.Query("search")),
			Kind:   models.PersonKind(c.Query("kind")),
			Role:   models.UserRole(c.Query("role")),
			Status: models.UserStatus(c.Query("status")),
			Level:  models.UserLevel(c.Query("level")),
		},
		Page:    intQuery(c, "page", 1),
		PerPage: intQuery(c, "perPage", 0),
	}
	if key := strings.TrimSpace(c.Query("sort")); key != "" {
		direction := models.SortAsc
		if strings.EqualFold(c.Query("order"), string(models.SortDesc)) {
			direction = models.SortDesc
		}
		q.Sort = &models.SortConfig{Key: key, Direction: direction}
	}
	if column := strings.TrimSpace(c.Query("toggle")); column != "" {
		next := q.Sort.Toggle(column)
		q.Sort = &next
	}

	rows, pagination, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	if q.Sort != nil {
		middleware.SetMeta(c, "sort", q.Sort)
	}
	meta := markEmpty(c, len(rows) == 0, "clear_filters")
	response.JSON(c, http.StatusOK, rows, pagination, meta)
}

// BulkDelete godoc
// @Summary Delete selected users
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.BulkUsersRequest true "Selected document numbers"
// @Success 200 {object} response.Envelope
// @Router /users/bulk-delete [post]
func (h *UserHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	res, err := h.users.BulkDelete(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res, nil)
}

// BulkIDCards godoc
// @Summary Generate ID cards for the selected students
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body dto.BulkUsersRequest true "Selected document numbers"
// @Success 202 {object} response.Envelope
// @Router /users/bulk-id-cards [post]
func (h *UserHandler) BulkIDCards(c *gin.Context) {
	var req dto.BulkUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	job, err := h.documents.EnqueueIDCards(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, job, nil)
}
