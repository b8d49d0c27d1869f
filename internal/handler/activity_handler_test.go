package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/matricula-dashboard-api/internal/models"
)

type fakeActivitySrv struct {
	entries []models.ActivityLog
	limit   int
}

func (f *fakeActivitySrv) List(_ context.Context, limit int) []models.ActivityLog {
	f.limit = limit
	return f.entries
}

func TestActivityHandlerListPassesLimit(t *testing.T) {
	srv := &fakeActivitySrv{entries: []models.ActivityLog{{ID: "a1", Action: "withdraw"}}}
	handler := NewActivityHandler(srv)

	c, rec := newTestContext(http.MethodGet, "/activity-logs?limit=5", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, srv.limit)
	assert.Nil(t, decodeEnvelope(t, rec).Meta)
}

func TestActivityHandlerListEmpty(t *testing.T) {
	handler := NewActivityHandler(&fakeActivitySrv{})

	c, rec := newTestContext(http.MethodGet, "/activity-logs?limit=abc", nil)
	handler.List(c)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, true, env.Meta["empty"])
	assert.Equal(t, "no_activity", env.Meta["hint"])
}
