package scheduler_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/scheduler"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/scheduler/mocks"
)

// tickParser fires every interval regardless of the expression.
type tickParser struct {
	interval time.Duration
}

func (p tickParser) NextAfter(_, _ string, after time.Time) (time.Time, error) {
	return after.Add(p.interval), nil
}

func namespaceJob(action scheduler.Action) scheduler.Job {
	return scheduler.Job{
		Spec:   "* * * * *",
		Action: action,
		Target: scheduler.Target{Kind: scheduler.TargetNamespace, Namespace: "ns1"},
	}
}

func resourceJob(action scheduler.Action, kind scheduler.TargetKind) scheduler.Job {
	return scheduler.Job{
		Spec:   "* * * * *",
		Action: action,
		Target: scheduler.Target{Kind: kind, Namespace: "ns1", Name: "api"},
	}
}

func TestService_RunJobCommand(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name   string
		give   scheduler.Job
		expect func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report)
	}{
		{
			name: "stop namespace",
			give: namespaceJob(scheduler.ActionStop),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().StopNamespace(mock.Anything, "ns1").Return(report, nil).Once()
			},
		},
		{
			name: "start namespace",
			give: namespaceJob(scheduler.ActionStart),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().StartNamespace(mock.Anything, "ns1").Return(report, nil).Once()
			},
		},
		{
			name: "restart namespace",
			give: namespaceJob(scheduler.ActionRestart),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().RestartNamespace(mock.Anything, "ns1").Return(report, nil).Once()
			},
		},
		{
			name: "stop deployment",
			give: resourceJob(scheduler.ActionStop, scheduler.TargetDeployment),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().StopDeployment(mock.Anything, "ns1", "api").Return(report, nil).Once()
			},
		},
		{
			name: "start deployment",
			give: resourceJob(scheduler.ActionStart, scheduler.TargetDeployment),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().StartDeployment(mock.Anything, "ns1", "api").Return(report, nil).Once()
			},
		},
		{
			name: "restart deployment",
			give: resourceJob(scheduler.ActionRestart, scheduler.TargetDeployment),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().RestartDeployment(mock.Anything, "ns1", "api").Return(report, nil).Once()
			},
		},
		{
			name: "restart pod",
			give: resourceJob(scheduler.ActionRestart, scheduler.TargetPod),
			expect: func(m *mocks.MockLifecycleUseCase, report *lifecycle.Report) {
				m.EXPECT().RestartPod(mock.Anything, "ns1", "api").Return(report, nil).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			useCase := mocks.NewMockLifecycleUseCase(t)
			wantReport := &lifecycle.Report{Namespace: "ns1"}
			tt.expect(useCase, wantReport)

			svc := scheduler.New(logger, useCase, tickParser{interval: time.Minute}, "UTC", time.Second, nil)

			report, err := svc.RunJobCommand(t.Context(), tt.give)
			require.NoError(t, err)
			require.Same(t, wantReport, report)
		})
	}

	t.Run("stopping a pod is unsupported", func(t *testing.T) {
		t.Parallel()

		useCase := mocks.NewMockLifecycleUseCase(t)
		svc := scheduler.New(logger, useCase, tickParser{interval: time.Minute}, "UTC", time.Second, nil)

		_, err := svc.RunJobCommand(t.Context(), resourceJob(scheduler.ActionStop, scheduler.TargetPod))
		require.ErrorIs(t, err, scheduler.ErrUnsupportedJob)
	})

	t.Run("engine error is returned", func(t *testing.T) {
		t.Parallel()

		useCase := mocks.NewMockLifecycleUseCase(t)
		boom := errors.New("boom")
		useCase.EXPECT().RestartNamespace(mock.Anything, "ns1").Return(nil, boom).Once()

		svc := scheduler.New(logger, useCase, tickParser{interval: time.Minute}, "UTC", time.Second, nil)

		_, err := svc.RunJobCommand(t.Context(), namespaceJob(scheduler.ActionRestart))
		require.ErrorIs(t, err, boom)
	})

	t.Run("job runs under the request timeout", func(t *testing.T) {
		t.Parallel()

		useCase := mocks.NewMockLifecycleUseCase(t)
		useCase.EXPECT().RestartNamespace(mock.Anything, "ns1").
			RunAndReturn(func(ctx context.Context, _ string) (*lifecycle.Report, error) {
				deadline, ok := ctx.Deadline()
				require.True(t, ok)
				require.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)

				return &lifecycle.Report{}, nil
			}).Once()

		svc := scheduler.New(logger, useCase, tickParser{interval: time.Minute}, "UTC", time.Second, nil)

		_, err := svc.RunJobCommand(t.Context(), namespaceJob(scheduler.ActionRestart))
		require.NoError(t, err)
	})
}

func TestService_Lifecycle(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	t.Run("fires due jobs until cancelled", func(t *testing.T) {
		t.Parallel()

		fired := make(chan struct{}, 1)

		useCase := mocks.NewMockLifecycleUseCase(t)
		useCase.EXPECT().RestartNamespace(mock.Anything, "ns1").
			Run(func(context.Context, string) {
				select {
				case fired <- struct{}{}:
				default:
				}
			}).
			Return(&lifecycle.Report{}, nil)

		svc := scheduler.New(
			logger,
			useCase,
			tickParser{interval: 10 * time.Millisecond},
			"UTC",
			time.Second,
			[]scheduler.Job{namespaceJob(scheduler.ActionRestart)},
		)
		require.Equal(t, "scheduler", svc.Name())
		require.Error(t, svc.Ping(t.Context()))

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		require.NoError(t, svc.Start(ctx))
		<-svc.Ready()
		require.NoError(t, svc.Ping(t.Context()))

		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatal("scheduled job did not fire")
		}

		cancel()
		require.NoError(t, svc.Shutdown(t.Context()))
		require.Error(t, svc.Ping(t.Context()))

		// second shutdown is a no-op
		require.NoError(t, svc.Shutdown(t.Context()))
	})

	t.Run("idle without jobs", func(t *testing.T) {
		t.Parallel()

		svc := scheduler.New(logger, mocks.NewMockLifecycleUseCase(t), tickParser{interval: time.Minute}, "UTC", time.Second, nil)

		ctx, cancel := context.WithCancel(t.Context())

		require.NoError(t, svc.Start(ctx))
		<-svc.Ready()
		require.NoError(t, svc.Ping(t.Context()))

		cancel()
		require.NoError(t, svc.Shutdown(t.Context()))
	})

	t.Run("shutdown waits for the loop", func(t *testing.T) {
		t.Parallel()

		svc := scheduler.New(logger, mocks.NewMockLifecycleUseCase(t), tickParser{interval: time.Minute}, "UTC", time.Second, nil)
		require.NoError(t, svc.Start(t.Context()))

		ctx, cancel := context.WithTimeout(t.Context(), 20*time.Millisecond)
		defer cancel()

		require.ErrorIs(t, svc.Shutdown(ctx), context.DeadlineExceeded)
	})
}
