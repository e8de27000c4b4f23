package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/metrics"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/tracing"
)

// Service is the orchestration engine. It holds no state between calls;
// every operation re-reads the cluster through the Repository.
type Service struct {
	logger           *slog.Logger
	repo             Repository
	batchConcurrency int
}

// Option configures a Service.
type Option func(*Service)

// WithBatchConcurrency limits how many per-resource calls a batch runs at once.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// New creates a new lifecycle service.
func New(
	logger *slog.Logger,
	repo Repository,
	opts ...Option,
) *Service {
	s := &Service{
		logger:           logger,
		repo:             repo,
		batchConcurrency: defaultBatchConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// StopNamespace scales every deployment in the namespace to 0.
// Skip markers are not consulted.
func (s *Service) StopNamespace(ctx context.Context, namespace string) (*Report, error) {
	return s.observe(ctx, OperationStopNamespace, namespace, "",
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			return s.scaleNamespace(ctx, logger, report, func(context.Context, *slog.Logger, Deployment) int32 {
				return 0
			})
		},
	)
}

// StartNamespace scales every deployment in the namespace to its recorded replica count.
// Skip markers are not consulted.
func (s *Service) StartNamespace(ctx context.Context, namespace string) (*Report, error) {
	return s.observe(ctx, OperationStartNamespace, namespace, "",
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			return s.scaleNamespace(ctx, logger, report, s.recordedReplicas)
		},
	)
}

// RestartNamespace deletes every pod in the namespace that is not opted out
// directly or through its owning deployment.
func (s *Service) RestartNamespace(ctx context.Context, namespace string) (*Report, error) {
	return s.observe(ctx, OperationRestartNamespace, namespace, "",
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			pods, err := s.repo.ListPodsQuery(ctx, namespace, "")
			if err != nil {
				return listErr(ErrListPods, namespace, err)
			}

			logger.DebugContext(ctx, "restarting pods", "count", len(pods))

			resolver := newOwnerResolver(s.logger, s.repo, namespace)

			report.Items = runBatch(ctx, s.batchConcurrency, pods,
				func(ctx context.Context, pod Pod) ItemOutcome {
					res := resolver.resolve(ctx, pod)
					if res.skip() {
						logger.DebugContext(ctx, "pod opted out of restart",
							"pod", pod.Name,
							"verdict", string(res.Verdict),
							"deployment", res.Deployment,
						)

						return ItemOutcome{Kind: KindPod, Name: pod.Name, Action: ActionSkipped, Reason: string(res.Verdict)}
					}

					return s.deletePod(ctx, logger, namespace, pod.Name)
				},
			)

			return batchErr(report, KindPod)
		},
	)
}

// StopDeployment scales the deployment to 0 regardless of skip markers.
func (s *Service) StopDeployment(ctx context.Context, namespace, name string) (*Report, error) {
	return s.observe(ctx, OperationStopDeployment, namespace, name,
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			outcome := s.patchReplicas(ctx, logger, namespace, name, 0)
			report.Items = []ItemOutcome{outcome}

			return outcome.Err
		},
	)
}

// StartDeployment scales the deployment to its recorded replica count.
func (s *Service) StartDeployment(ctx context.Context, namespace, name string) (*Report, error) {
	return s.observe(ctx, OperationStartDeployment, namespace, name,
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			dep, err := s.repo.GetDeploymentQuery(ctx, namespace, name)
			if err != nil {
				return targetErr(ErrGetDeployment, KindDeployment, namespace, name, err)
			}

			replicas := s.recordedReplicas(ctx, logger, *dep)
			outcome := s.patchReplicas(ctx, logger, namespace, name, replicas)
			report.Items = []ItemOutcome{outcome}

			return outcome.Err
		},
	)
}

// RestartDeployment deletes the pods selected by the deployment, unless the
// deployment is opted out. Pods carrying the skip marker are kept.
func (s *Service) RestartDeployment(ctx context.Context, namespace, name string) (*Report, error) {
	return s.observe(ctx, OperationRestartDeployment, namespace, name,
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			dep, err := s.repo.GetDeploymentQuery(ctx, namespace, name)
			if err != nil {
				return targetErr(ErrGetDeployment, KindDeployment, namespace, name, err)
			}

			if hasSkipMarker(dep.MatchLabels) {
				logger.InfoContext(ctx, "deployment opted out of restart")

				report.Items = []ItemOutcome{{
					Kind:   KindDeployment,
					Name:   name,
					Action: ActionSkipped,
					Reason: ReasonDeploymentMarker,
				}}

				return nil
			}

			if dep.SelectorErr != nil {
				return fmt.Errorf("%w: deployment '%s' in namespace '%s': %w",
					ErrInvalidSelector, name, namespace, dep.SelectorErr)
			}

			if dep.Selector == "" {
				return fmt.Errorf("%w: deployment '%s' in namespace '%s'", ErrEmptySelector, name, namespace)
			}

			pods, err := s.repo.ListPodsQuery(ctx, namespace, dep.Selector)
			if err != nil {
				return listErr(ErrListPods, namespace, err)
			}

			logger.DebugContext(ctx, "restarting deployment pods", "selector", dep.Selector, "count", len(pods))

			report.Items = runBatch(ctx, s.batchConcurrency, pods,
				func(ctx context.Context, pod Pod) ItemOutcome {
					if hasSkipMarker(pod.Labels) {
						return ItemOutcome{Kind: KindPod, Name: pod.Name, Action: ActionSkipped, Reason: ReasonPodMarker}
					}

					return s.deletePod(ctx, logger, namespace, pod.Name)
				},
			)

			return batchErr(report, KindPod)
		},
	)
}

// RestartPod deletes the pod unless it or its owning deployment is opted out.
func (s *Service) RestartPod(ctx context.Context, namespace, name string) (*Report, error) {
	return s.observe(ctx, OperationRestartPod, namespace, name,
		func(ctx context.Context, logger *slog.Logger, report *Report) error {
			pod, err := s.repo.GetPodQuery(ctx, namespace, name)
			if err != nil {
				return targetErr(ErrGetPod, KindPod, namespace, name, err)
			}

			res := newOwnerResolver(s.logger, s.repo, namespace).resolve(ctx, *pod)
			if res.skip() {
				logger.InfoContext(ctx, "pod opted out of restart",
					"verdict", string(res.Verdict),
					"deployment", res.Deployment,
				)

				report.Items = []ItemOutcome{{Kind: KindPod, Name: name, Action: ActionSkipped, Reason: string(res.Verdict)}}

				return nil
			}

			outcome := s.deletePod(ctx, logger, namespace, name)
			report.Items = []ItemOutcome{outcome}

			return outcome.Err
		},
	)
}

func (s *Service) scaleNamespace(
	ctx context.Context,
	logger *slog.Logger,
	report *Report,
	desired func(ctx context.Context, logger *slog.Logger, dep Deployment) int32,
) error {
	deployments, err := s.repo.ListDeploymentsQuery(ctx, report.Namespace)
	if err != nil {
		return listErr(ErrListDeployments, report.Namespace, err)
	}

	logger.DebugContext(ctx, "scaling deployments", "count", len(deployments))

	report.Items = runBatch(ctx, s.batchConcurrency, deployments,
		func(ctx context.Context, dep Deployment) ItemOutcome {
			outcome := s.patchReplicas(ctx, logger, report.Namespace, dep.Name, desired(ctx, logger, dep))
			if outcome.Action == ActionFailed && isNotFound(outcome.Err) {
				// deleted between list and patch
				return ItemOutcome{Kind: KindDeployment, Name: dep.Name, Action: ActionSkipped, Reason: ReasonGone}
			}

			return outcome
		},
	)

	return batchErr(report, KindDeployment)
}

func (s *Service) recordedReplicas(ctx context.Context, logger *slog.Logger, dep Deployment) int32 {
	rec := recoverRecordedReplicas(dep.Annotations)

	if rec.defaulted() {
		metrics.RecordRecordedReplicasFallback(string(rec.Source))
	}

	logger = logger.With("deployment", dep.Name, "source", string(rec.Source))

	switch rec.Source {
	case replicaSourceAnnotation:
		logger.DebugContext(ctx, "recorded replica count recovered", "replicas", rec.Value)
	case replicaSourceMalformed:
		logger.WarnContext(ctx, "last-applied configuration is malformed, starting with 0 replicas", "reason", rec.Err)
	case replicaSourceMissing, replicaSourceUnset:
		logger.InfoContext(ctx, "no recorded replica count, starting with 0 replicas")
	}

	return rec.Value
}

func (s *Service) patchReplicas(
	ctx context.Context,
	logger *slog.Logger,
	namespace,
	name string,
	replicas int32,
) ItemOutcome {
	outcome := ItemOutcome{Kind: KindDeployment, Name: name, Replicas: replicas}

	err := s.repo.PatchDeploymentReplicasCommand(ctx, namespace, name, replicas)
	if err != nil {
		outcome.Action = ActionFailed
		outcome.Err = targetErr(ErrPatchDeployment, KindDeployment, namespace, name, err)

		logger.ErrorContext(ctx, "patch deployment replicas failed",
			"deployment", name,
			"replicas", replicas,
			"reason", err,
		)

		return outcome
	}

	outcome.Action = ActionPatched

	logger.InfoContext(ctx, "deployment scaled", "deployment", name, "replicas", replicas)

	return outcome
}

func (s *Service) deletePod(ctx context.Context, logger *slog.Logger, namespace, name string) ItemOutcome {
	err := s.repo.DeletePodCommand(ctx, namespace, name)
	if err != nil {
		if isNotFound(err) {
			logger.DebugContext(ctx, "pod already gone", "pod", name)

			return ItemOutcome{Kind: KindPod, Name: name, Action: ActionSkipped, Reason: ReasonGone}
		}

		logger.ErrorContext(ctx, "delete pod failed", "pod", name, "reason", err)

		return ItemOutcome{
			Kind:   KindPod,
			Name:   name,
			Action: ActionFailed,
			Err:    targetErr(ErrDeletePod, KindPod, namespace, name, err),
		}
	}

	logger.InfoContext(ctx, "pod deleted", "pod", name)

	return ItemOutcome{Kind: KindPod, Name: name, Action: ActionDeleted}
}

// observe runs one operation inside a span and records its metrics and summary log.
func (s *Service) observe(
	ctx context.Context,
	op Operation,
	namespace,
	target string,
	fn func(ctx context.Context, logger *slog.Logger, report *Report) error,
) (*Report, error) {
	ctx, span := tracing.StartSpan(ctx, "lifecycle."+string(op),
		attribute.String(tracing.AttrOperation, string(op)),
		attribute.String(tracing.AttrNamespace, namespace),
		attribute.String(tracing.AttrResourceName, target),
	)
	defer span.End()

	logger := s.logger.With("operation", string(op), "namespace", namespace)
	if target != "" {
		logger = logger.With("target", target)
	}

	start := time.Now()
	report := newReport(op, namespace, target)

	err := fn(ctx, logger, report)

	duration := time.Since(start)
	counts := report.Counts()

	for i := range report.Items {
		metrics.RecordResourceAction(report.Items[i].Kind, string(report.Items[i].Action))
	}

	metrics.RecordOperation(string(op), err, duration)

	span.SetAttributes(
		attribute.Int(tracing.AttrItems, len(report.Items)),
		attribute.Int(tracing.AttrFailed, counts.Failed),
	)
	tracing.RecordSpanError(span, err)

	if err != nil {
		logger.ErrorContext(ctx, "operation failed",
			"duration", duration,
			"patched", counts.Patched,
			"deleted", counts.Deleted,
			"skipped", counts.Skipped,
			"failed", counts.Failed,
			"reason", err,
		)

		return report, err
	}

	logger.InfoContext(ctx, "operation completed",
		"duration", duration,
		"patched", counts.Patched,
		"deleted", counts.Deleted,
		"skipped", counts.Skipped,
	)

	return report, nil
}
