package lifecycle

const (
	// SkipLabelKey and SkipLabelValue form the opt-out marker honored by restarts.
	// The value is compared after Unicode case folding.
	SkipLabelKey   = "restart"
	SkipLabelValue = "ignore"

	// LastAppliedConfigAnnotation holds the last manifest applied with kubectl apply.
	LastAppliedConfigAnnotation = "kubectl.kubernetes.io/last-applied-configuration"

	KindDeployment = "Deployment"
	KindReplicaSet = "ReplicaSet"
	KindPod        = "Pod"

	defaultBatchConcurrency = 4
)

// Operation names a lifecycle operation. Values are used as metric and span labels.
type Operation string

const (
	OperationStopNamespace     Operation = "stop_namespace"
	OperationStartNamespace    Operation = "start_namespace"
	OperationRestartNamespace  Operation = "restart_namespace"
	OperationStopDeployment    Operation = "stop_deployment"
	OperationStartDeployment   Operation = "start_deployment"
	OperationRestartDeployment Operation = "restart_deployment"
	OperationRestartPod        Operation = "restart_pod"
)
