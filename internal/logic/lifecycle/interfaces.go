package lifecycle

import "context"

// Repository is the port interface for K8s operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	ListDeploymentsQuery(
		ctx context.Context,
		namespace string,
	) ([]Deployment, error)

	GetDeploymentQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*Deployment, error)

	PatchDeploymentReplicasCommand(
		ctx context.Context,
		namespace,
		name string,
		replicas int32,
	) error

	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Pod, error)

	GetPodQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*Pod, error)

	DeletePodCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	GetReplicaSetQuery(
		ctx context.Context,
		namespace,
		name string,
	) (*ReplicaSet, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// tooManyRequests is a private interface for checking "too many requests" errors
// without importing the adapter package.
type tooManyRequests interface {
	IsTooManyRequests()
}
