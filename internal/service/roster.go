package service

import (
	"errors"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	"github.com/noah-isme/matricula-dashboard-api/internal/search"
	"github.com/noah-isme/matricula-dashboard-api/internal/store"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
	"github.com/noah-isme/matricula-dashboard-api/pkg/pagination"
)

// rosterStore is the part of store.Store the services depend on.
type rosterStore interface {
	Snapshot() store.State
	Update(reduce func(store.State) (store.State, error)) (store.State, error)
}

func pageInfo[T any](p pagination.Page[T]) *models.Pagination {
	return &models.Pagination{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

// translateDomainError maps sentinel errors of the domain packages onto API errors.
func translateDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrStudentNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "student not found")
	case errors.Is(err, store.ErrEventNotFound):
		return appErrors.Clone(appErrors.ErrNotFound, "calendar event not found")
	case errors.Is(err, store.ErrInvalidTransition):
		return appErrors.Wrap(err, appErrors.ErrInvalidTransition.Code, appErrors.ErrInvalidTransition.Status, err.Error())
	case errors.Is(err, store.ErrInvalidPerson):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	case errors.Is(err, search.ErrEmptyTag), errors.Is(err, search.ErrDuplicateTag),
		errors.Is(err, search.ErrUnknownKPI), errors.Is(err, search.ErrUnknownSortColumn):
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, err.Error())
	}
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
}
