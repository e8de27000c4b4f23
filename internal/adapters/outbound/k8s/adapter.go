package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/infra/tracing"
	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

const pingTimeout = 3 * time.Second

// Adapter implements lifecycle.Repository on top of the cluster API.
// It doubles as the cluster API pinger.
type Adapter struct {
	logger    *slog.Logger
	clientset kubernetes.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
) *Adapter {
	return &Adapter{
		logger:    logger,
		clientset: clientset,
	}
}

var _ lifecycle.Repository = (*Adapter)(nil)

func (a *Adapter) ListDeploymentsQuery(
	ctx context.Context,
	namespace string,
) (_ []lifecycle.Deployment, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "list", lifecycle.KindDeployment, namespace, "")
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	list, err := a.clientset.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list deployments: %w", classify(err))
	}

	deployments := make([]lifecycle.Deployment, 0, len(list.Items))
	for i := range list.Items {
		dep, convErr := toDomainDeployment(&list.Items[i])
		if convErr != nil {
			// scaling does not need the selector
			a.logger.WarnContext(ctx, "deployment selector ignored",
				"namespace", namespace,
				"deployment", list.Items[i].Name,
				"reason", convErr,
			)
		}

		deployments = append(deployments, dep)
	}

	return deployments, nil
}

func (a *Adapter) GetDeploymentQuery(
	ctx context.Context,
	namespace,
	name string,
) (_ *lifecycle.Deployment, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", lifecycle.KindDeployment, namespace, name)
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	obj, err := a.clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get deployment: %w", classify(err))
	}

	// a broken selector only matters for restarts; the engine reports it from SelectorErr
	dep, convErr := toDomainDeployment(obj)
	if convErr != nil {
		a.logger.DebugContext(ctx, "deployment selector not rendered",
			"namespace", namespace,
			"deployment", name,
			"reason", convErr,
		)
	}

	return &dep, nil
}

// replicasPatch is the strategic merge patch body that sets spec.replicas.
type replicasPatch struct {
	Spec replicasPatchSpec `json:"spec"`
}

type replicasPatchSpec struct {
	Replicas int32 `json:"replicas"`
}

func (a *Adapter) PatchDeploymentReplicasCommand(
	ctx context.Context,
	namespace,
	name string,
	replicas int32,
) (err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "patch", lifecycle.KindDeployment, namespace, name)
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	patchBytes, err := json.Marshal(replicasPatch{Spec: replicasPatchSpec{Replicas: replicas}})
	if err != nil {
		return fmt.Errorf("marshal replicas patch: %w", err)
	}

	_, err = a.clientset.AppsV1().Deployments(namespace).Patch(
		ctx,
		name,
		types.StrategicMergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)
	if err != nil {
		return fmt.Errorf("patch deployment replicas: %w", classify(err))
	}

	return nil
}

func (a *Adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) (_ []lifecycle.Pod, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "list", lifecycle.KindPod, namespace, "")
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", classify(err))
	}

	pods := make([]lifecycle.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *Adapter) GetPodQuery(
	ctx context.Context,
	namespace,
	name string,
) (_ *lifecycle.Pod, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", lifecycle.KindPod, namespace, name)
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	obj, err := a.clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get pod: %w", classify(err))
	}

	pod := toDomainPod(obj)

	return &pod, nil
}

func (a *Adapter) DeletePodCommand(
	ctx context.Context,
	namespace,
	name string,
) (err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "delete", lifecycle.KindPod, namespace, name)
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	err = a.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	if err != nil {
		return fmt.Errorf("delete pod: %w", classify(err))
	}

	return nil
}

func (a *Adapter) GetReplicaSetQuery(
	ctx context.Context,
	namespace,
	name string,
) (_ *lifecycle.ReplicaSet, err error) {
	ctx, span := tracing.StartK8sSpan(ctx, "get", lifecycle.KindReplicaSet, namespace, name)
	defer func() {
		tracing.RecordSpanError(span, err)
		span.End()
	}()

	obj, err := a.clientset.AppsV1().ReplicaSets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get replica set: %w", classify(err))
	}

	rs := toDomainReplicaSet(obj)

	return &rs, nil
}

// Name returns the pinger name of the cluster API.
func (a *Adapter) Name() string {
	return "kubernetes-api"
}

// PingerCritical keeps the process alive while the API server is unreachable.
// Readiness still follows the ping result.
func (a *Adapter) PingerCritical() bool {
	return false
}

// PingerTimeout allows the API server a little longer than the default ping timeout.
func (a *Adapter) PingerTimeout() time.Duration {
	return pingTimeout
}

// Ping checks that the API server answers the version endpoint.
// The request is bound to ctx and is abandoned when ctx ends.
func (a *Adapter) Ping(ctx context.Context) error {
	err := a.clientset.Discovery().RESTClient().Get().AbsPath("/version").Do(ctx).Error()
	if err != nil {
		return fmt.Errorf("ping kubernetes api: %w", err)
	}

	return nil
}

// classify replaces API status errors the domain reacts to with marker errors.
func classify(err error) error {
	switch {
	case apierrors.IsNotFound(err):
		return &NotFoundError{cause: err}
	case apierrors.IsTooManyRequests(err):
		return &TooManyRequestsError{cause: err}
	}

	return err
}
