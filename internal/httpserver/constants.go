package httpserver

import "time"

const (
	defaultPort = "8080"

	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb

	// writeTimeoutMargin leaves room to write the response after the request deadline.
	writeTimeoutMargin = 5 * time.Second

	basicAuthRealm = "k8s-lifecycle-gateway"

	contentTypeText = "text/plain; charset=utf-8"
)

// Success bodies of the lifecycle routes.
const (
	msgRestartNamespace  = "Restarted pods in namespace '%s'"
	msgStopNamespace     = "Scaled all deployments in namespace '%s' to 0"
	msgStartNamespace    = "Scaled all deployments in namespace '%s' to last known replica count"
	msgRestartDeployment = "Restarted pods in deployment '%s'"
	msgStopDeployment    = "Scaled deployment '%s' to 0"
	msgStartDeployment   = "Started deployment '%s'"
	msgRestartPod        = "Restarted pod '%s'"
)
