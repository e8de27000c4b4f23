package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/app"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/config"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/appstate"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/logging"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/pinger"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/shutdown"
)

// Set at build time with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	appStart := time.Now()
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := newRootCommand(signals, appStart).ExecuteContext(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}
}

func newRootCommand(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the lifecycle API and run scheduled jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), signals, appStart)
		},
	}

	root := &cobra.Command{
		Use:   "k8s-lifecycle-gateway",
		Short: "HTTP gateway to stop, start and restart Kubernetes workloads",
		Long: "k8s-lifecycle-gateway scales deployments to zero and back and restarts pods " +
			"of a namespace, a deployment or a single pod. Configuration is read from the environment.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	root.AddCommand(serve, &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "k8s-lifecycle-gateway %s (%s)\n", version, commit)

			return err
		},
	})

	return root
}

func run(ctx context.Context, signals <-chan os.Signal, appStart time.Time) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	logger.InfoContext(ctx, "starting", "version", version, "commit", commit)

	pingers := pinger.New(logger, cfg.PingerInterval)
	appState := appstate.New(logger, appStart, cfg.TerminationFile, signals, pingers)

	application, err := app.New(logger, cfg, appState, pingers)
	if err != nil {
		return fmt.Errorf("new application: %w", err)
	}

	if err := application.Run(ctx); err != nil {
		return err
	}

	logger.InfoContext(ctx, "bye")

	return nil
}
