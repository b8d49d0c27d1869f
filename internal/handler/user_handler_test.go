package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

type fakeUserSrv struct {
	rows      []dto.UserRow
	lastQuery dto.UserQuery
	deleted   []string
}

func (f *fakeUserSrv) List(_ context.Context, q dto.UserQuery) ([]dto.UserRow, *models.Pagination, error) {
	f.lastQuery = q
	return f.rows, &models.Pagination{Page: 1, PageSize: 10, TotalCount: len(f.rows)}, nil
}

func (f *fakeUserSrv) BulkDelete(_ context.Context, req dto.BulkUsersRequest) (*dto.BulkDeleteResponse, error) {
	f.deleted = req.DNIs
	return &dto.BulkDeleteResponse{Removed: len(req.DNIs)}, nil
}

type fakeIDCardQueue struct {
	err error
}

func (f *fakeIDCardQueue) EnqueueIDCards(_ context.Context, req dto.BulkUsersRequest) (*models.DocumentJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DocumentJob{ID: "job-1", DNIs: req.DNIs, Status: models.DocumentJobQueued}, nil
}

func TestUserHandlerListParsesFiltersAndSort(t *testing.T) {
	srv := &fakeUserSrv{rows: []dto.UserRow{{DNI: "70000001"}}}
	handler := NewUserHandler(srv, &fakeIDCardQueue{})

	c, rec := newTestContext(http.MethodGet, "/users?search=%20ana%20&kind=student&sort=name&order=DESC&page=3&perPage=25", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ana", srv.lastQuery.Filter.Search)
	assert.Equal(t, models.PersonKind("student"), srv.lastQuery.Filter.Kind)
	assert.Equal(t, 3, srv.lastQuery.Page)
	assert.Equal(t, 25, srv.lastQuery.PerPage)
	require.NotNil(t, srv.lastQuery.Sort)
	assert.Equal(t, "name", srv.lastQuery.Sort.Key)
	assert.Equal(t, models.SortDesc, srv.lastQuery.Sort.Direction)
}

func TestUserHandlerListWithoutSort(t *testing.T) {
	srv := &fakeUserSrv{}
	handler := NewUserHandler(srv, &fakeIDCardQueue{})

	c, rec := newTestContext(http.MethodGet, "/users", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, srv.lastQuery.Sort)
	assert.Equal(t, true, decodeEnvelope(t, rec).Meta["empty"])
}

func TestUserHandlerListToggleFlipsCurrentColumn(t *testing.T) {
	srv := &fakeUserSrv{rows: []dto.UserRow{{DNI: "70000001"}}}
	handler := NewUserHandler(srv, &fakeIDCardQueue{})

	c, rec := newTestContext(http.MethodGet, "/users?sort=name&order=asc&toggle=name", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.lastQuery.Sort)
	assert.Equal(t, models.SortDesc, srv.lastQuery.Sort.Direction)
	sort, ok := decodeEnvelope(t, rec).Meta["sort"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "desc", sort["direction"])

	c, _ = newTestContext(http.MethodGet, "/users?sort=name&order=desc&toggle=status", nil)
	handler.List(c)
	assert.Equal(t, models.SortConfig{Key: "status", Direction: models.SortAsc}, *srv.lastQuery.Sort)
}

func TestUserHandlerBulkDelete(t *testing.T) {
	srv := &fakeUserSrv{}
	handler := NewUserHandler(srv, &fakeIDCardQueue{})

	c, rec := newTestContext(http.MethodPost, "/users/bulk-delete", dto.BulkUsersRequest{DNIs: []string{"1", "2"}})
	handler.BulkDelete(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1", "2"}, srv.deleted)
}

func TestUserHandlerBulkIDCardsAccepted(t *testing.T) {
	handler := NewUserHandler(&fakeUserSrv{}, &fakeIDCardQueue{})

	c, rec := newTestContext(http.MethodPost, "/users/bulk-id-cards", dto.BulkUsersRequest{DNIs: []string{"70000001"}})
	handler.BulkIDCards(c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestUserHandlerBulkIDCardsWithoutStudents(t *testing.T) {
	handler := NewUserHandler(&fakeUserSrv{}, &fakeIDCardQueue{err: appErrors.Clone(appErrors.ErrValidation, "no students selected")})

	c, rec := newTestContext(http.MethodPost, "/users/bulk-id-cards", dto.BulkUsersRequest{DNIs: []string{"40000001"}})
	handler.BulkIDCards(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
