package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/search"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/pagination"
)

const (
	defaultUsersPerPage = 10
	maxUsersPerPage     = 100
)

// UserService serves the user directory.
type UserService struct {
	roster    rosterStore
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewUserService constructs the service.
func NewUserService(roster rosterStore, validate *validator.Validate, metrics *MetricsService, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{roster: roster, validator: ensureValidator(validate), metrics: metrics, logger: logger}
}

func toUserRow(p models.Person) dto.UserRow {
	return dto.UserRow{
		Kind:         p.Kind,
		DNI:          p.DocumentNumber(),
		Name:         p.DisplayName(),
		Role:         p.Role(),
		RoleLabel:    p.RoleLabel(),
		Level:        p.Level(),
		GradeSection: p.GradeSection(),
		Status:       p.Status(),
		Sede:         p.Sede(),
		LastLogin:    p.LastLogin(),
		Person:       p,
	}
}

// List filters, sorts and pages every user kind.
func (s *UserService) List(ctx context.Context, q dto.UserQuery) ([]dto.UserRow, *models.Pagination, error) {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultUsersPerPage
	}
	if perPage > maxUsersPerPage {
		perPage = maxUsersPerPage
	}

	filtered := search.FilterUsers(s.roster.Snapshot().AllUsers(), q.Filter)
	sorted, err := search.SortUsers(filtered, q.Sort)
	if err != nil {
		return nil, nil, translateDomainError(err)
	}
	s.metrics.RecordViewRecomputation("users", len(sorted))

	page := pagination.Paginate(sorted, q.Page, perPage)
	rows := make([]dto.UserRow, 0, len(page.Items))
	for _, p := range page.Items {
		rows = append(rows, toUserRow(p))
	}
	return rows, pageInfo(page), nil
}

// BulkDelete removes the selected users of every kind.
func (s *UserService) BulkDelete(ctx context.Context, req dto.BulkUsersRequest) (*dto.BulkDeleteResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid selection")
	}
	removed := 0
	_, err := s.roster.Update(func(st store.State) (store.State, error) {
		next, n := store.RemoveUsers(st, req.DNIs)
		removed = n
		return next, nil
	})
	if err != nil {
		return nil, translateDomainError(err)
	}
	s.logger.Info("users removed", zap.Int("requested", len(req.DNIs)), zap.Int("removed", removed))
	return &dto.BulkDeleteResponse{Removed: removed}, nil
}
