package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

type fakeEnrollmentSrv struct {
	view      *dto.EnrollmentViewResponse
	lastQuery dto.EnrollmentQuery
	lastFmt   string
	student   *models.Student
	err       error
	file      *dto.ExportFile
	changed   dto.SectionChangeRequest
}

func (f *fakeEnrollmentSrv) Catalog() models.GradeCatalog { return nil }

func (f *fakeEnrollmentSrv) View(_ context.Context, q dto.EnrollmentQuery) (*dto.EnrollmentViewResponse, *models.Pagination, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.view, &models.Pagination{Page: q.Page, PageSize: 7, TotalCount: len(f.view.Students)}, nil
}

func (f *fakeEnrollmentSrv) KPIs(context.Context) []models.KPICount {
	return []models.KPICount{{Title: models.KPIEnrolled, Value: 3}}
}

func (f *fakeEnrollmentSrv) Tags(context.Context, dto.TagCommandRequest) (*dto.TagCommandResponse, error) {
	return &dto.TagCommandResponse{}, f.err
}

func (f *fakeEnrollmentSrv) Student(context.Context, string) (*models.Student, error) {
	return f.student, f.err
}

func (f *fakeEnrollmentSrv) Transfer(context.Context, string) (*models.Student, error) {
	return f.student, f.err
}

func (f *fakeEnrollmentSrv) Withdraw(context.Context, string) (*models.Student, error) {
	return f.student, f.err
}

func (f *fakeEnrollmentSrv) AssignVacancy(context.Context, string) (*models.Student, error) {
	return f.student, f.err
}

func (f *fakeEnrollmentSrv) ChangeSection(_ context.Context, _ string, req dto.SectionChangeRequest) (*models.Student, error) {
	f.changed = req
	return f.student, f.err
}

func (f *fakeEnrollmentSrv) Export(_ context.Context, q dto.EnrollmentQuery, format string) (*dto.ExportFile, error) {
	f.lastQuery = q
	f.lastFmt = format
	return f.file, f.err
}

func TestEnrollmentHandlerViewPassesTagsInOrder(t *testing.T) {
	srv := &fakeEnrollmentSrv{view: &dto.EnrollmentViewResponse{Students: []models.Student{{DocumentNumber: "70000001"}}}}
	handler := NewEnrollmentHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/enrollment/students?kpi=Matriculados&tag=zapata&tag=1%C2%B0&page=2", nil)
	handler.View(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.KPIEnrolled, srv.lastQuery.KPI)
	assert.Equal(t, []string{"zapata", "1°"}, srv.lastQuery.Tags)
	assert.Equal(t, 2, srv.lastQuery.Page)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, float64(2), env.Pagination["page"])
	assert.Nil(t, env.Meta["empty"])
}

func TestEnrollmentHandlerViewFlagsEmptyResult(t *testing.T) {
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{view: &dto.EnrollmentViewResponse{Students: []models.Student{}}})

	c, rec := newTestContext(http.MethodGet, "/enrollment/students?tag=nadie", nil)
	handler.View(c)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env.Meta["empty"])
	assert.Equal(t, "clear_filters", env.Meta["hint"])
}

func TestEnrollmentHandlerStudentNotFound(t *testing.T) {
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")})

	c, rec := newTestContext(http.MethodGet, "/enrollment/students/1", nil)
	c.Params = gin.Params{{Key: "dni", Value: "1"}}
	handler.Student(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", errorCode(decodeEnvelope(t, rec)))
}

func TestEnrollmentHandlerTagsRejectsMalformedJSON(t *testing.T) {
	handler := NewEnrollmentHandler(&fakeEnrollmentSrv{})

	c, rec := newTestContext(http.MethodPost, "/enrollment/tags", "{")
	handler.Tags(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(decodeEnvelope(t, rec)))
}

func TestEnrollmentHandlerChangeSection(t *testing.T) {
	srv := &fakeEnrollmentSrv{student: &models.Student{DocumentNumber: "70000001", Section: "B"}}
	handler := NewEnrollmentHandler(srv)

	c, rec := newTestContext(http.MethodPut, "/enrollment/students/70000001/change-section", dto.SectionChangeRequest{Section: "B"})
	c.Params = gin.Params{{Key: "dni", Value: "70000001"}}
	handler.ChangeSection(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "B", srv.changed.Section)
	var student models.Student
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &student))
	assert.Equal(t, "B", student.Section)
}

func TestEnrollmentHandlerExportDefaultsToCSV(t *testing.T) {
	srv := &fakeEnrollmentSrv{file: &dto.ExportFile{Filename: "Matricula.csv", ContentType: "text/csv", Payload: []byte("a,b\n")}}
	handler := NewEnrollmentHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/enrollment/students/export?tag=ana", nil)
	handler.Export(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dto.ExportFormatCSV, srv.lastFmt)
	assert.Equal(t, []string{"ana"}, srv.lastQuery.Tags)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Matricula.csv")
	assert.Equal(t, "a,b\n", rec.Body.String())
}
