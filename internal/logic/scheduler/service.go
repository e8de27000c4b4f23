package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/metrics"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

// Service fires scheduled lifecycle jobs through the engine.
type Service struct {
	logger     *slog.Logger
	useCase    LifecycleUseCase
	parser     cronParser
	tz         string
	timeout    time.Duration
	jobs       []Job
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	mu         sync.RWMutex
	lastFire   time.Time
	exitErr    error
}

// New creates a scheduler for already validated jobs.
func New(
	logger *slog.Logger,
	useCase LifecycleUseCase,
	parser cronParser,
	tz string,
	timeout time.Duration,
	jobs []Job,
) *Service {
	return &Service{
		logger:  logger,
		useCase: useCase,
		parser:  parser,
		tz:      tz,
		timeout: timeout,
		jobs:    jobs,
		now:     time.Now,
		ready:   make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "scheduler is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the scheduler component
func (s *Service) Name() string {
	return "scheduler"
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping reports whether the loop is running.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-s.doneCh:
		s.mu.RLock()
		defer s.mu.RUnlock()

		if s.exitErr != nil {
			return fmt.Errorf("scheduler loop exited: %w", s.exitErr)
		}

		return errors.New("scheduler loop exited")
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return errors.New("scheduler is not ready")
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "scheduler is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down scheduler")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before scheduler loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "scheduler loop exited")
	}

	return nil
}

// RunCommand sleeps until the nearest fire time and runs the due jobs, until ctx is done.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("scheduler", "RunCommand")

	close(s.ready)

	if len(s.jobs) == 0 {
		logger.InfoContext(ctx, "no scheduled jobs configured")
		<-ctx.Done()

		return
	}

	logger.InfoContext(ctx, "scheduler started", "jobs", len(s.jobs), "tz", s.tz)

	for {
		next, due, err := s.nextFire()
		if err != nil {
			logger.ErrorContext(ctx, "compute next fire time", "reason", err)
			s.setExitErr(err)

			return
		}

		logger.DebugContext(ctx, "waiting for next fire time", "at", next, "due", len(due))

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating scheduler loop")

			return
		case <-timer.C:
		}

		s.setLastFire(next)

		for _, job := range due {
			if ctx.Err() != nil {
				return
			}

			_, _ = s.RunJobCommand(ctx, job)
		}
	}
}

// RunJobCommand runs a single job with the request timeout and records its result.
func (s *Service) RunJobCommand(ctx context.Context, job Job) (*lifecycle.Report, error) {
	logger := s.logger.With("job", job.String(), "cron", job.Spec)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	report, err := s.dispatch(ctx, job)

	metrics.RecordScheduledRun(string(job.Action), err)

	if err != nil {
		logger.ErrorContext(ctx, "scheduled job failed", "reason", err)

		return report, err
	}

	counts := report.Counts()
	logger.InfoContext(ctx, "scheduled job finished",
		"patched", counts.Patched,
		"deleted", counts.Deleted,
		"skipped", counts.Skipped,
	)

	return report, nil
}

func (s *Service) dispatch(ctx context.Context, job Job) (*lifecycle.Report, error) {
	t := job.Target

	switch t.Kind {
	case TargetNamespace:
		switch job.Action {
		case ActionStop:
			return s.useCase.StopNamespace(ctx, t.Namespace)
		case ActionStart:
			return s.useCase.StartNamespace(ctx, t.Namespace)
		case ActionRestart:
			return s.useCase.RestartNamespace(ctx, t.Namespace)
		}
	case TargetDeployment:
		switch job.Action {
		case ActionStop:
			return s.useCase.StopDeployment(ctx, t.Namespace, t.Name)
		case ActionStart:
			return s.useCase.StartDeployment(ctx, t.Namespace, t.Name)
		case ActionRestart:
			return s.useCase.RestartDeployment(ctx, t.Namespace, t.Name)
		}
	case TargetPod:
		if job.Action == ActionRestart {
			return s.useCase.RestartPod(ctx, t.Namespace, t.Name)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedJob, job)
}

// nextFire returns the nearest fire time and the jobs due at it.
// Fire times are computed after the later of now and the previous fire time,
// so a job never runs twice for the same occurrence.
func (s *Service) nextFire() (time.Time, []Job, error) {
	after := s.now()

	s.mu.RLock()
	if s.lastFire.After(after) {
		after = s.lastFire
	}
	s.mu.RUnlock()

	var (
		next time.Time
		due  []Job
	)

	for _, job := range s.jobs {
		at, err := s.parser.NextAfter(job.Spec, s.tz, after)
		if err != nil {
			return time.Time{}, nil, fmt.Errorf("%s: %w", job, err)
		}

		switch {
		case next.IsZero() || at.Before(next):
			next = at
			due = []Job{job}
		case at.Equal(next):
			due = append(due, job)
		}
	}

	return next, due, nil
}

func (s *Service) setLastFire(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFire = at
}

func (s *Service) setExitErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exitErr = err
}
