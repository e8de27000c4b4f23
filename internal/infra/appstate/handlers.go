package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/pinger"
)

type pingerStatus struct {
	Healthy             bool       `json:"healthy"`
	Ready               bool       `json:"ready"`
	LastRun             *time.Time `json:"lastRun,omitempty"`
	LastSuccess         *time.Time `json:"lastSuccess,omitempty"`
	LastLatency         string     `json:"lastLatency,omitempty"`
	LastError           string     `json:"lastError,omitempty"`
	ConsecutiveFailures int        `json:"consecutiveFailures"`
}

type statusResponse struct {
	State     string                  `json:"state"`
	Uptime    string                  `json:"uptime"`
	StartTime time.Time               `json:"startTime"`
	UptimeSec float64                 `json:"uptimeSeconds"`
	Pingers   map[string]pingerStatus `json:"pingers,omitempty"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			logger.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		logger.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:     string(state),
			Uptime:    uptime.String(),
			StartTime: appState.GetStartTime(),
			UptimeSec: uptime.Seconds(),
		}

		if all := appState.GetAllStats(); len(all) > 0 {
			response.Pingers = make(map[string]pingerStatus, len(all))
			for name, stats := range all {
				response.Pingers[name] = toPingerStatus(stats)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.ErrorContext(ctx, "failed to encode status response",
				"reason", err,
			)

			return
		}

		logger.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func toPingerStatus(stats *pinger.Statistics) pingerStatus {
	out := pingerStatus{
		Healthy:             stats.IsHealthy,
		Ready:               stats.IsReady,
		ConsecutiveFailures: stats.ConsecutiveFailures,
	}

	if !stats.LastRun.IsZero() {
		lastRun := stats.LastRun
		out.LastRun = &lastRun
		out.LastLatency = stats.LastLatency.String()
	}

	if !stats.LastSuccess.IsZero() {
		lastSuccess := stats.LastSuccess
		out.LastSuccess = &lastSuccess
	}

	if stats.LastError != nil {
		out.LastError = stats.LastError.Error()
	}

	return out
}
