package scheduler

import (
	"context"
	"time"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

// LifecycleUseCase is the set of engine operations a job can trigger.
type LifecycleUseCase interface {
	StopNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	StartNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	RestartNamespace(ctx context.Context, namespace string) (*lifecycle.Report, error)
	StopDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	StartDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	RestartDeployment(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
	RestartPod(ctx context.Context, namespace, name string) (*lifecycle.Report, error)
}

// cronParser computes the next occurrence of a cron expression.
type cronParser interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}
