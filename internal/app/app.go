package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/adapters/outbound/k8s"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/config"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/httpserver"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/cronparser"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/pinger"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/shutdown"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/tracing"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/scheduler"
)

const serviceName = "k8s-lifecycle-gateway"

type App struct {
	logger     *slog.Logger
	appState   appstater
	signals    signalHandler
	components []component
	pingers    component
}

// New creates a new application instance with all dependencies wired.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	pingers component,
) (*App, error) {
	tracer, err := tracing.Setup(logger, cfg.TracingExporter, serviceName, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}

	// Create K8s config
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	kubeConfig.UserAgent = serviceName
	// no single API call may outlive the request it serves
	kubeConfig.Timeout = cfg.RequestTimeout

	// Create K8s clientset
	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	// Create secondary adapter (K8s adapter)
	k8sRepo := k8s.New(logger, clientset)

	// Create logic service (inject repository adapter)
	engine := lifecycle.New(
		logger,
		k8sRepo,
		lifecycle.WithBatchConcurrency(cfg.BatchConcurrency),
	)

	parser := cronparser.New()

	jobs, err := scheduler.ParseJobs(cfg.Schedules, parser, cfg.ScheduleTZ)
	if err != nil {
		return nil, fmt.Errorf("parse schedules: %w", err)
	}

	schedulerService := scheduler.New(logger, engine, parser, cfg.ScheduleTZ, cfg.RequestTimeout, jobs)

	httpServer := httpserver.New(logger, appState, engine, httpserver.Options{
		Port:           cfg.HTTPPort,
		RequestTimeout: cfg.RequestTimeout,
		Auth:           cfg.Auth,
	})
	metricsServer := httpserver.NewMetricsServer(logger, cfg.MetricsPort)

	for _, p := range []pinger.Pinger{k8sRepo, httpServer, metricsServer, schedulerService} {
		if err := appState.RegisterPinger(p); err != nil {
			return nil, fmt.Errorf("register pinger %s: %w", p.Name(), err)
		}
	}

	appState.RegisterShutdowner(tracer)

	return &App{
		logger:     logger,
		appState:   appState,
		signals:    shutdown.New(logger, appState, cfg.TerminationFile),
		components: []component{schedulerService, metricsServer, httpServer},
		pingers:    pingers,
	}, nil
}

// Run starts the components, marks the application running once all of them
// are ready and blocks until a termination signal or ctx cancellation.
func (a *App) Run(originCtx context.Context) error {
	err := a.signals.CheckTermination(originCtx)
	if err != nil {
		return fmt.Errorf("check termination: %w", err)
	}

	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	a.logger.InfoContext(ctx, "starting lifecycle gateway")

	runErr := a.startAll(ctx)
	if runErr != nil {
		cancel()
	}

	<-ctx.Done()

	a.logger.InfoContext(ctx, "stopping lifecycle gateway")

	if err := a.appState.Shutdown(context.WithoutCancel(originCtx)); err != nil {
		a.logger.ErrorContext(ctx, "graceful shutdown failed", "reason", err)

		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}

// startAll starts the components, then the pingers once the components are ready,
// so the first round of pings sees them up. Shutdown runs in reverse order.
func (a *App) startAll(ctx context.Context) error {
	if err := a.start(ctx, a.components...); err != nil {
		return err
	}

	if !a.waitReady(ctx, a.components...) {
		return nil
	}

	if err := a.start(ctx, a.pingers); err != nil {
		return err
	}

	if !a.waitReady(ctx, a.pingers) {
		return nil
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running: %w", err)
	}

	a.logger.InfoContext(ctx, "lifecycle gateway is running")

	return nil
}

func (a *App) start(ctx context.Context, components ...component) error {
	for _, c := range components {
		if err := c.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", c.Name(), err)
		}

		a.appState.RegisterShutdowner(c)
	}

	return nil
}

// waitReady reports false when ctx is done before every component is ready.
func (a *App) waitReady(ctx context.Context, components ...component) bool {
	readies := make([]<-chan struct{}, 0, len(components))
	for _, c := range components {
		readies = append(readies, c.Ready())
	}

	<-allChannelsClose(ctx, a.logger, readies...)

	return ctx.Err() == nil
}

// allChannelsClose returns a channel that is closed once every input channel
// is closed or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	go func() {
		defer close(out)

		for i, ch := range chans {
			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for readiness", "pending", len(chans)-i)

				return
			}
		}
	}()

	return out
}
