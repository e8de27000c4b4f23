package appstate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/pinger"
)

func serveAndAssertStatus(t *testing.T, handler http.HandlerFunc, path string, wantCode int) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	require.Equal(t, wantCode, rec.Code)
}

func TestHandleHealthz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name     string
		giveOK   bool
		wantCode int
	}{
		{name: "healthy returns 200", giveOK: true, wantCode: http.StatusOK},
		{name: "unhealthy returns 503", giveOK: false, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMockhealthChecker(t)
			m.EXPECT().IsHealthy().Return(tt.giveOK).Once()

			serveAndAssertStatus(t, HandleHealthz(logger, m), "/-/healthz", tt.wantCode)
		})
	}
}

func TestHandleReadyz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name     string
		giveOK   bool
		wantCode int
	}{
		{name: "ready returns 200", giveOK: true, wantCode: http.StatusOK},
		{name: "not ready returns 503", giveOK: false, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMockreadyChecker(t)
			m.EXPECT().IsReady().Return(tt.giveOK).Once()

			serveAndAssertStatus(t, HandleReadyz(logger, m), "/-/readyz", tt.wantCode)
		})
	}
}

func TestHandleStatus(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	giveState := StateRunning
	giveStartTime := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	giveUptime := 5 * time.Second
	giveLastRun := giveStartTime.Add(time.Second)

	m := newMockstatusGetter(t)
	m.EXPECT().GetState().Return(giveState).Once()
	m.EXPECT().GetUptime().Return(giveUptime).Once()
	m.EXPECT().GetStartTime().Return(giveStartTime).Once()
	m.EXPECT().GetAllStats().Return(map[string]*pinger.Statistics{
		"kubernetes-api": {
			IsHealthy:           true,
			IsReady:             false,
			LastRun:             giveLastRun,
			LastLatency:         20 * time.Millisecond,
			LastError:           errors.New("connection refused"),
			ConsecutiveFailures: 2,
		},
	}).Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/-/status", http.NoBody)

	HandleStatus(logger, m).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body statusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	require.Equal(t, string(giveState), body.State)
	require.Equal(t, giveUptime.String(), body.Uptime)
	require.InDelta(t, giveUptime.Seconds(), body.UptimeSec, 0.0001)
	require.True(t, giveStartTime.Equal(body.StartTime))

	api, ok := body.Pingers["kubernetes-api"]
	require.True(t, ok)
	require.False(t, api.Ready)
	require.True(t, api.Healthy)
	require.Equal(t, "connection refused", api.LastError)
	require.Equal(t, "20ms", api.LastLatency)
	require.Equal(t, 2, api.ConsecutiveFailures)
	require.Nil(t, api.LastSuccess)
	require.NotNil(t, api.LastRun)
}
