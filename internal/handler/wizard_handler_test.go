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
	"github.com/noah-isme/matricula-dashboard-api/internal/service"
	"github.com/noah-isme/matricula-dashboard-api/internal/wizard"
	appErrors "github.com/noah-isme/matricula-dashboard-api/pkg/errors"
)

type fakeWizardSrv struct {
	session *service.WizardSession
	err     error
	lastID  string
	ident   dto.IdentificationRequest
	calls   []string
}

func (f *fakeWizardSrv) Start(context.Context) *service.WizardSession {
	f.calls = append(f.calls, "start")
	return f.session
}

func (f *fakeWizardSrv) step(name, id string) (*service.WizardSession, error) {
	f.calls = append(f.calls, name)
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func (f *fakeWizardSrv) Get(_ context.Context, id string) (*service.WizardSession, error) {
	return f.step("get", id)
}

func (f *fakeWizardSrv) SetIdentification(_ context.Context, id string, req dto.IdentificationRequest) (*service.WizardSession, error) {
	f.ident = req
	return f.step("identification", id)
}

func (f *fakeWizardSrv) SetPlacement(_ context.Context, id string, _ dto.PlacementRequest) (*service.WizardSession, error) {
	return f.step("placement", id)
}

func (f *fakeWizardSrv) Next(_ context.Context, id string) (*service.WizardSession, error) {
	return f.step("next", id)
}

func (f *fakeWizardSrv) Back(_ context.Context, id string) (*service.WizardSession, error) {
	return f.step("back", id)
}

func (f *fakeWizardSrv) Finish(_ context.Context, id string) (*service.WizardSession, error) {
	return f.step("finish", id)
}

func TestWizardHandlerStart(t *testing.T) {
	srv := &fakeWizardSrv{session: &service.WizardSession{Session: wizard.Session{ID: "wiz-1", StepName: "identification"}}}
	handler := NewWizardHandler(srv)

	c, rec := newTestContext(http.MethodPost, "/enrollment/wizard", nil)
	handler.Start(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "wiz-1", body["id"])
	assert.Equal(t, "identification", body["stepName"])
}

func TestWizardHandlerIdentificationForwardsPayload(t *testing.T) {
	srv := &fakeWizardSrv{session: &service.WizardSession{Session: wizard.Session{ID: "wiz-1"}}}
	handler := NewWizardHandler(srv)

	c, rec := newTestContext(http.MethodPut, "/enrollment/wizard/wiz-1/identification", dto.IdentificationRequest{Query: "70000009"})
	c.Params = gin.Params{{Key: "id", Value: "wiz-1"}}
	handler.SetIdentification(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wiz-1", srv.lastID)
	assert.Equal(t, "70000009", srv.ident.Query)
}

func TestWizardHandlerInvalidTransition(t *testing.T) {
	handler := NewWizardHandler(&fakeWizardSrv{err: appErrors.Clone(appErrors.ErrInvalidTransition, "step incomplete")})

	c, rec := newTestContext(http.MethodPost, "/enrollment/wizard/wiz-1/next", nil)
	c.Params = gin.Params{{Key: "id", Value: "wiz-1"}}
	handler.Next(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "INVALID_TRANSITION", errorCode(decodeEnvelope(t, rec)))
}

func TestWizardHandlerStepRoutes(t *testing.T) {
	srv := &fakeWizardSrv{session: &service.WizardSession{}}
	handler := NewWizardHandler(srv)

	for _, fn := range []gin.HandlerFunc{handler.Get, handler.Back, handler.Finish} {
		c, rec := newTestContext(http.MethodPost, "/enrollment/wizard/wiz-2", nil)
		c.Params = gin.Params{{Key: "id", Value: "wiz-2"}}
		fn(c)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, []string{"get", "back", "finish"}, srv.calls)
}
