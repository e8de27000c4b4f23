package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/appstate"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/pinger"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
}

// lifecycleUseCase is the engine surface exposed over HTTP.
type lifecycleUseCase interface {
	StopNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	StartNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	RestartNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	StopDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	StartDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	RestartDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	RestartPod(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
}
