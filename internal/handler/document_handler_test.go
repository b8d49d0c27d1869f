package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/dto"
	"github.com/noah-isme/matricula-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

type fakeDocumentSrv struct {
	file      *dto.ExportFile
	job       *models.DocumentJob
	err       error
	lastDNI   string
	lastToken string
}

func (f *fakeDocumentSrv) EnrollmentForm(_ context.Context, dni string) (*dto.ExportFile, error) {
	f.lastDNI = dni
	return f.file, f.err
}

func (f *fakeDocumentSrv) Certificate(_ context.Context, dni string) (*dto.ExportFile, error) {
	f.lastDNI = dni
	return f.file, f.err
}

func (f *fakeDocumentSrv) Job(context.Context, string) (*models.DocumentJob, error) {
	return f.job, f.err
}

func (f *fakeDocumentSrv) Download(_ context.Context, token string) (*dto.ExportFile, error) {
	f.lastToken = token
	return f.file, f.err
}

func pdfFile(name string) *dto.ExportFile {
	return &dto.ExportFile{Filename: name, ContentType: "application/pdf", Payload: []byte("%PDF-1.3")}
}

func TestDocumentHandlerEnrollmentForm(t *testing.T) {
	srv := &fakeDocumentSrv{file: pdfFile("Ficha_Matricula_70000001.pdf")}
	handler := NewDocumentHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/documents/students/70000001/enrollment-form", nil)
	c.Params = gin.Params{{Key: "dni", Value: "70000001"}}
	handler.EnrollmentForm(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "70000001", srv.lastDNI)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Ficha_Matricula_70000001.pdf")
}

func TestDocumentHandlerCertificateUnknownStudent(t *testing.T) {
	handler := NewDocumentHandler(&fakeDocumentSrv{err: appErrors.Clone(appErrors.ErrNotFound, "student not found")})

	c, rec := newTestContext(http.MethodGet, "/documents/students/1/certificate", nil)
	c.Params = gin.Params{{Key: "dni", Value: "1"}}
	handler.Certificate(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDocumentHandlerJob(t *testing.T) {
	handler := NewDocumentHandler(&fakeDocumentSrv{job: &models.DocumentJob{ID: "job-1", Status: models.DocumentJobFinished}})

	c, rec := newTestContext(http.MethodGet, "/documents/jobs/job-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "job-1"}}
	handler.Job(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"finished"`)
}

func TestDocumentHandlerDownloadExpired(t *testing.T) {
	srv := &fakeDocumentSrv{err: appErrors.Clone(appErrors.ErrGone, "download link expired")}
	handler := NewDocumentHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/documents/download?token=abc.def", nil)
	handler.Download(c)

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "abc.def", srv.lastToken)
	assert.Equal(t, "GONE", errorCode(decodeEnvelope(t, rec)))
}
