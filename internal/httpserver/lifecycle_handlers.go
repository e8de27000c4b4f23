package httpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

const (
	paramNamespace = "namespace"
	paramName      = "name"
)

type namespaceAction func(ctx context.Context, namespace string) (*lifecycle.Report, error)

type resourceAction func(ctx context.Context, namespace, name string) (*lifecycle.Report, error)

func (s *Server) routeLifecycle(r chi.Router) {
	r.Route("/namespace/{namespace}", func(r chi.Router) {
		r.Post("/restart", s.handleNamespace(s.useCase.RestartNamespace, msgRestartNamespace))
		r.Post("/stop", s.handleNamespace(s.useCase.StopNamespace, msgStopNamespace))
		r.Post("/start", s.handleNamespace(s.useCase.StartNamespace, msgStartNamespace))

		r.Post("/deployment/{name}/restart", s.handleResource(s.useCase.RestartDeployment, msgRestartDeployment))
		r.Post("/deployment/{name}/stop", s.handleResource(s.useCase.StopDeployment, msgStopDeployment))
		r.Post("/deployment/{name}/start", s.handleResource(s.useCase.StartDeployment, msgStartDeployment))

		r.Post("/pod/{name}/restart", s.handleResource(s.useCase.RestartPod, msgRestartPod))
	})
}

func (s *Server) handleNamespace(action namespaceAction, successFormat string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		namespace := chi.URLParam(r, paramNamespace)
		logger := s.logger.With(
			"traceID", middleware.GetReqID(ctx),
			"namespace", namespace,
		)

		if err := validateNamespace(namespace); err != nil {
			writeError(ctx, logger, w, err)

			return
		}

		if _, err := action(ctx, namespace); err != nil {
			writeError(ctx, logger, w, err)

			return
		}

		writeText(ctx, logger, w, http.StatusOK, fmt.Sprintf(successFormat, namespace))
	}
}

func (s *Server) handleResource(action resourceAction, successFormat string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		namespace := chi.URLParam(r, paramNamespace)
		name := chi.URLParam(r, paramName)
		logger := s.logger.With(
			"traceID", middleware.GetReqID(ctx),
			"namespace", namespace,
			"name", name,
		)

		if err := validateNamespace(namespace); err != nil {
			writeError(ctx, logger, w, err)

			return
		}

		if err := validateName(name); err != nil {
			writeError(ctx, logger, w, err)

			return
		}

		if _, err := action(ctx, namespace, name); err != nil {
			writeError(ctx, logger, w, err)

			return
		}

		writeText(ctx, logger, w, http.StatusOK, fmt.Sprintf(successFormat, name))
	}
}

func validateNamespace(namespace string) error {
	if msgs := validation.IsDNS1123Label(namespace); len(msgs) > 0 {
		return fmt.Errorf("%w: namespace '%s': %s", ErrInvalidPathParam, namespace, strings.Join(msgs, "; "))
	}

	return nil
}

func validateName(name string) error {
	if msgs := validation.IsDNS1123Subdomain(name); len(msgs) > 0 {
		return fmt.Errorf("%w: name '%s': %s", ErrInvalidPathParam, name, strings.Join(msgs, "; "))
	}

	return nil
}

// statusCode maps an engine or validation error to the response status.
func statusCode(err error) int {
	var batchErr *lifecycle.BatchError

	switch {
	case errors.Is(err, ErrInvalidPathParam):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &batchErr):
		return http.StatusInternalServerError
	case errors.Is(err, lifecycle.ErrTargetNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrThrottled):
		return http.StatusTooManyRequests
	case errors.Is(err, lifecycle.ErrEmptySelector), errors.Is(err, lifecycle.ErrInvalidSelector):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	code := statusCode(err)

	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
	}

	logger.Log(ctx, level, "lifecycle request failed", "status", code, "reason", err)

	writeText(ctx, logger, w, code, err.Error())
}

func writeText(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(code)

	if _, err := io.WriteString(w, body); err != nil {
		logger.DebugContext(ctx, "failed to write response", "reason", err)
	}
}
