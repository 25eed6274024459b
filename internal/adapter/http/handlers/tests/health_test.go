package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"taskdesk/internal/adapter/http/handlers"

	"github.com/stretchr/testify/require"
)

type probeStub struct {
	err error
}

func (p probeStub) CheckAvailability(context.Context) error {
	return p.err
}

func TestHealthHandler_CheckHealth(t *testing.T) {
	router := newRouter()
	router.GET("/ok", handlers.NewHealthHandler(probeStub{}, "taskdesk", "memory").CheckHealth)
	router.GET("/down", handlers.NewHealthHandler(probeStub{err: errors.New("unavailable")}, "taskdesk", "memory").CheckHealth)

	rec := serve(router, http.MethodGet, "/ok", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"ok"`)

	rec = serve(router, http.MethodGet, "/down", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"down"`)
}

func TestHealthHandler_CheckHealthReport(t *testing.T) {
	router := newRouter()
	router.GET("/report", handlers.NewHealthHandler(probeStub{err: errors.New("unavailable")}, "taskdesk", "file").CheckHealthReport)

	rec := serve(router, http.MethodGet, "/report", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "taskdesk", got.AppName)
	require.Equal(t, "file", got.StorageDriver)
	require.Equal(t, "en", got.Language)
	require.Equal(t, handlers.StatusDown, got.Status.Storage)
}
