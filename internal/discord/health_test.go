package discord

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth_DegradedWhenDisconnected(t *testing.T) {
	bot, tc := newTestBot(t, instant())
	bot.interactionCreate(tc.Session, newCommandInteraction("print-mine", "u1"))
	srv := NewHTTPServer(":0", bot)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentTypeOptions))

	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, StatusDegraded, status.Status)
	assert.False(t, status.Connected)
	assert.Equal(t, 1, status.ActiveSessions)
	assert.Positive(t, status.CommandsReceived)
}

func TestHandleHealth_HealthyWhenConnected(t *testing.T) {
	bot, _ := newTestBot(t, instant())
	bot.Session.DataReady = true
	srv := NewHTTPServer(":0", bot)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, StatusHealthy, status.Status)
	assert.Zero(t, status.ActiveSessions)
}

func TestMetricsEndpoint(t *testing.T) {
	bot, _ := newTestBot(t, instant())
	srv := NewHTTPServer(":0", bot)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "printminer_gold_mined_total")
}

func TestUnknownRoute(t *testing.T) {
	bot, _ := newTestBot(t, instant())
	srv := NewHTTPServer(":0", bot)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/announce", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
