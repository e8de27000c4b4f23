package config

import "time"

// Env key constants. Gateway configuration env vars use the LIFECYCLE_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "LIFECYCLE_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "LIFECYCLE_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "LIFECYCLE_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "LIFECYCLE_LOG_FORMAT"

// Port for the lifecycle API and the health endpoints.
const envKeyHTTPPort = "LIFECYCLE_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "LIFECYCLE_METRICS_PORT"

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "LIFECYCLE_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Deadline for one lifecycle operation, over HTTP or from the scheduler.
const (
	envKeyRequestTimeout = "LIFECYCLE_REQUEST_TIMEOUT"
	envMinRequestTimeout = time.Second
)

// Number of concurrent pod deletions or deployment patches in a batch.
const (
	envKeyBatchConcurrency = "LIFECYCLE_BATCH_CONCURRENCY"
	envMinBatchConcurrency = 1
	envMaxBatchConcurrency = 64
)

// Span exporter: none or stdout.
const envKeyTracingExporter = "LIFECYCLE_TRACING_EXPORTER"

// Scheduled jobs, `;` separated `<cron>|<action>|<target>` entries.
const envKeySchedules = "LIFECYCLE_SCHEDULES"

// IANA zone for schedules without an inline CRON_TZ.
const envKeyScheduleTZ = "LIFECYCLE_SCHEDULE_TZ"

// File whose presence stops the process during startup.
const envKeyTerminationFile = "LIFECYCLE_TERMINATION_FILE"

// Standard k8s env keys used as fallback when LIFECYCLE_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)

// Basic auth keys are unprefixed; deployments already set them under these names.
const (
	envKeyEnableBasicAuth   = "ENABLE_BASIC_AUTH"
	envKeyBasicAuthUser     = "BASIC_AUTH_USER"
	envKeyBasicAuthPassword = "BASIC_AUTH_PASSWORD"
)
