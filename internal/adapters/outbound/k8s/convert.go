package k8s

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/k8s-lifecycle-gateway/internal/logic/lifecycle"
)

// toDomainDeployment converts a deployment. On a selector error the
// returned deployment is still filled in, has no Selector and carries the error in SelectorErr.
func toDomainDeployment(dep *appsv1.Deployment) (lifecycle.Deployment, error) {
	out := lifecycle.Deployment{
		Name:        dep.Name,
		Namespace:   dep.Namespace,
		Annotations: dep.Annotations,
	}

	if dep.Spec.Replicas != nil {
		out.Replicas = *dep.Spec.Replicas
	}

	if dep.Spec.Selector == nil {
		return out, nil
	}

	out.MatchLabels = dep.Spec.Selector.MatchLabels

	selector, err := metav1.LabelSelectorAsSelector(dep.Spec.Selector)
	if err != nil {
		out.SelectorErr = err

		return out, fmt.Errorf("%w: deployment '%s' in namespace '%s': %w",
			ErrInvalidSelector, dep.Name, dep.Namespace, err)
	}

	// labels.Everything renders as an empty string; the domain refuses it.
	if selector.Empty() {
		return out, nil
	}

	out.Selector = selector.String()

	return out, nil
}

func toDomainPod(pod *corev1.Pod) lifecycle.Pod {
	return lifecycle.Pod{
		Name:            pod.Name,
		Namespace:       pod.Namespace,
		Labels:          pod.Labels,
		OwnerReferences: toDomainOwners(pod.OwnerReferences),
	}
}

func toDomainReplicaSet(rs *appsv1.ReplicaSet) lifecycle.ReplicaSet {
	return lifecycle.ReplicaSet{
		Name:            rs.Name,
		Namespace:       rs.Namespace,
		OwnerReferences: toDomainOwners(rs.OwnerReferences),
	}
}

func toDomainOwners(refs []metav1.OwnerReference) []lifecycle.OwnerReference {
	if len(refs) == 0 {
		return nil
	}

	out := make([]lifecycle.OwnerReference, 0, len(refs))
	for i := range refs {
		out = append(out, lifecycle.OwnerReference{
			Kind: refs[i].Kind,
			Name: refs[i].Name,
		})
	}

	return out
}
